package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeAlexBV/warehouse-api/internal/application/dto"
	"github.com/JoeAlexBV/warehouse-api/internal/application/inventory"
	"github.com/JoeAlexBV/warehouse-api/internal/domain"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/entity"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad de stock no se
// modifica por aquí: toda variación pasa por el motor de ajustes
// (inventory.AdjustStockUseCase) para que quede registrada en el libro.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	txRunner     inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	txRunner inventory.TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo, txRunner: txRunner}
}

// Create crea un producto. Si la cantidad inicial es mayor que cero, inserta
// el movimiento "initial_stock" en la misma transacción que el alta: el libro
// arranca consistente con el stock desde el primer momento.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQuantity < 0 || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.validateRefs(in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		SKU:           in.SKU,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		ReorderLevel:  in.ReorderLevel,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.StockQuantity > 0 {
			return movementRepo.Create(&entity.StockMovement{
				ProductID:    product.ID,
				Quantity:     product.StockQuantity,
				MovementType: entity.MovementTypeInitialStock,
				Notes:        "Alta de stock inicial",
				CreatedAt:    now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza campos del producto. Sin campo de stock en el request:
// la cantidad solo cambia vía ajuste para no romper el libro de movimientos.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		existing, err := uc.repo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.CategoryID != nil || in.SupplierID != nil {
		if err := uc.validateRefs(in.CategoryID, in.SupplierID); err != nil {
			return nil, err
		}
	}
	if in.CategoryID != nil {
		product.CategoryID = normalizeRef(in.CategoryID)
	}
	if in.SupplierID != nil {
		product.SupplierID = normalizeRef(in.SupplierID)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros opcionales y paginación.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) (*dto.ProductListResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. El esquema elimina en cascada sus movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validateRefs verifica que categoría y proveedor referenciados existan.
func (uc *ProductUseCase) validateRefs(categoryID, supplierID *string) error {
	if categoryID != nil && *categoryID != "" {
		category, err := uc.categoryRepo.GetByID(*categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
	}
	if supplierID != nil && *supplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(*supplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// normalizeRef convierte cadena vacía en nil (desasociar la referencia).
func normalizeRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
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
