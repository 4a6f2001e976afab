package inventory

import (
	"context"
	"time"

	"github.com/JoeAlexBV/warehouse-api/internal/application/dto"
	"github.com/JoeAlexBV/warehouse-api/internal/domain"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/entity"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
)

// AdjustStockUseCase aplica un delta firmado a la cantidad de un producto y
// registra el movimiento correspondiente, todo en una transacción con bloqueo
// de fila (SELECT FOR UPDATE). Es el único camino que modifica StockQuantity.
type AdjustStockUseCase struct {
	txRunner TxRunner
	zeroKind string // clasificación para delta == 0 (política configurable)
}

// NewAdjustStockUseCase construye el motor de ajustes. zeroMovementType
// clasifica los ajustes con delta cero; vacío aplica el histórico "stock_out".
func NewAdjustStockUseCase(txRunner TxRunner, zeroMovementType string) *AdjustStockUseCase {
	if zeroMovementType == "" {
		zeroMovementType = entity.MovementTypeStockOut
	}
	return &AdjustStockUseCase{txRunner: txRunner, zeroKind: zeroMovementType}
}

// Adjust valida y aplica el ajuste:
//  1. carga el producto bloqueando la fila (dos ajustes concurrentes sobre el
//     mismo producto se serializan, sin lost update),
//  2. calcula newQuantity = actual + quantity,
//  3. si quedaría negativo, falla con InsufficientStockError sin efectos,
//  4. si no, actualiza la cantidad e inserta el movimiento en la misma tx.
//
// Commit o Rollback todo-o-nada: nunca queda cambio de producto sin su
// movimiento ni movimiento sin su cambio. Devuelve el producto actualizado.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, productID string, quantity int, notes string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQuantity := product.StockQuantity + quantity
		if newQuantity < 0 {
			requested := quantity
			if requested < 0 {
				requested = -requested
			}
			return &domain.InsufficientStockError{
				Current:   product.StockQuantity,
				Requested: requested,
			}
		}

		if err := productRepo.UpdateStock(productID, newQuantity); err != nil {
			return err
		}

		movementType := uc.zeroKind
		switch {
		case quantity > 0:
			movementType = entity.MovementTypeStockIn
		case quantity < 0:
			movementType = entity.MovementTypeStockOut
		}
		movement := &entity.StockMovement{
			ProductID:    productID,
			Quantity:     quantity,
			MovementType: movementType,
			Notes:        notes,
			CreatedAt:    time.Now(),
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		product.StockQuantity = newQuantity
		product.UpdatedAt = time.Now()
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		SKU:           p.SKU,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		ReorderLevel:  p.ReorderLevel,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		NeedsReorder:  p.NeedsReorder(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
