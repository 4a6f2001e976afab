package inventory

import (
	"context"

	"github.com/JoeAlexBV/warehouse-api/internal/application/dto"
	"github.com/JoeAlexBV/warehouse-api/internal/domain"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/entity"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
)

// Límites de paginación del historial. Valores fuera de rango se ajustan al
// rango en vez de rechazarse (paginación tolerante).
const (
	historyDefaultLimit = 100
	historyMaxLimit     = 1000
)

// StockLedgerUseCase consulta y alimenta el libro de movimientos. El libro es
// append-only: las entradas nunca se modifican después de escribirse.
type StockLedgerUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewStockLedgerUseCase construye el caso de uso del libro de movimientos.
func NewStockLedgerUseCase(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// Append inserta un movimiento suelto con clasificación libre del llamador.
// No valida el efecto del delta sobre el stock: eso es responsabilidad del
// motor de ajustes. Falla solo si el producto no existe.
func (uc *StockLedgerUseCase) Append(ctx context.Context, productID string, quantity int, movementType, notes string) (*dto.StockMovementResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movement := &entity.StockMovement{
		ProductID:    productID,
		Quantity:     quantity,
		MovementType: movementType,
		Notes:        notes,
	}
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// History devuelve el historial de movimientos de un producto, más reciente
// primero. offset y limit se ajustan a rangos válidos: limit a [1,1000]
// (0 o negativo aplica el default 100), offset negativo a 0.
func (uc *StockLedgerUseCase) History(ctx context.Context, productID string, offset, limit int) ([]dto.StockMovementResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if limit <= 0 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	movements, err := uc.movementRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.StockMovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		MovementType: m.MovementType,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}
