package repository

import "github.com/JoeAlexBV/warehouse-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos (DIP). Tabla insert-only: solo alta y lectura, nunca update ni
// delete individual.
type StockMovementRepository interface {
	// Create inserta un movimiento y completa movement.ID con la identidad generada.
	Create(movement *entity.StockMovement) error
	// ListByProduct lista movimientos de un producto, más reciente primero
	// (created_at DESC con id DESC como desempate estable).
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
