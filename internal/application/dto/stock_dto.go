package dto

import "time"

// StockAdjustmentRequest body para POST /api/v1/products/{id}/adjust-stock.
// Quantity es un delta firmado: positivo agrega, negativo retira.
type StockAdjustmentRequest struct {
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// StockMovementResponse un registro del libro de movimientos.
type StockMovementResponse struct {
	ID           int64     `json:"id"`
	ProductID    string    `json:"product_id"`
	Quantity     int       `json:"quantity"`
	MovementType string    `json:"movement_type"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
