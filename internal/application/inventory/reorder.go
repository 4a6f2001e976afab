package inventory

import (
	"context"

	"github.com/JoeAlexBV/warehouse-api/internal/application/dto"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
)

// ReorderUseCase responde qué productos requieren reposición. El predicado
// vive en entity.Product.NeedsReorder (stock <= nivel de reorden, umbral
// inclusivo); aquí solo se consulta la colección. Sin paginación: el
// subconjunto bajo de stock de un catálogo operativo es pequeño.
type ReorderUseCase struct {
	productRepo repository.ProductRepository
}

// NewReorderUseCase construye el evaluador de reposición.
func NewReorderUseCase(productRepo repository.ProductRepository) *ReorderUseCase {
	return &ReorderUseCase{productRepo: productRepo}
}

// ListLowStock lista los productos con stock en o por debajo de su nivel de reorden.
func (uc *ReorderUseCase) ListLowStock(ctx context.Context) ([]dto.LowStockProductResponse, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.LowStockProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			SKU:           p.SKU,
			StockQuantity: p.StockQuantity,
			ReorderLevel:  p.ReorderLevel,
		})
	}
	return items, nil
}
