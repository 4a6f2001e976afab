package repository

import "github.com/JoeAlexBV/warehouse-api/internal/domain/entity"

// ProductFilter filtros opcionales para el listado de productos.
type ProductFilter struct {
	CategoryID string // vacío = sin filtro
	SupplierID string // vacío = sin filtro
	Search     string // busca en name, description y sku (ILIKE)
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update no toca StockQuantity: la cantidad solo cambia vía UpdateStock,
// que usa exclusivamente el motor de ajustes dentro de su transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido con un repositorio atado a una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, quantity int) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
