package inventory

import (
	"context"

	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las escrituras
// compuestas (actualizar producto + insertar movimiento): si fn devuelve
// error se hace Rollback, si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
