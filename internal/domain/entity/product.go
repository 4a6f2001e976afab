package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto (SKU) del inventario del almacén.
// StockQuantity solo se modifica a través del motor de ajustes: cada cambio
// de cantidad queda emparejado con un StockMovement. Invariante: StockQuantity >= 0.
type Product struct {
	ID            string
	Name          string
	Description   string
	SKU           string          // código único global
	Price         decimal.Decimal // precio unitario, > 0
	StockQuantity int
	ReorderLevel  int
	CategoryID    *string // nil si no tiene categoría
	SupplierID    *string // nil si no tiene proveedor
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NeedsReorder indica si el producto requiere reposición.
// El umbral es inclusivo: un producto exactamente en su nivel de reorden ya se marca.
func (p *Product) NeedsReorder() bool {
	return p.StockQuantity <= p.ReorderLevel
}
