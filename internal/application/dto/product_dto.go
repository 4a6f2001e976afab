package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// StockQuantity es la cantidad inicial: si es mayor que cero se genera un
// movimiento "initial_stock" en la misma transacción del alta.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	ReorderLevel  int             `json:"reorder_level" validate:"min=0"`
	CategoryID    *string         `json:"category_id,omitempty"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Deliberadamente sin campo de stock: la cantidad solo se modifica por
// POST /products/{id}/adjust-stock para no saltarse el libro de movimientos.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	SKU          *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Price        *decimal.Decimal `json:"price"`
	ReorderLevel *int             `json:"reorder_level" validate:"omitempty,min=0"`
	CategoryID   *string          `json:"category_id"`
	SupplierID   *string          `json:"supplier_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ReorderLevel  int             `json:"reorder_level"`
	CategoryID    *string         `json:"category_id"`
	SupplierID    *string         `json:"supplier_id"`
	NeedsReorder  bool            `json:"needs_reorder"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LowStockProductResponse proyección reducida para la lista de reposición.
type LowStockProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	StockQuantity int    `json:"stock_quantity"`
	ReorderLevel  int    `json:"reorder_level"`
}
