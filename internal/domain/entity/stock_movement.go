package entity

import "time"

// Tipos de movimiento de stock. MovementType es texto libre en el libro
// (el llamador puede aportar su propia clasificación); estos son los que emite el sistema.
const (
	MovementTypeInitialStock = "initial_stock" // alta inicial al crear el producto
	MovementTypeStockIn      = "stock_in"      // ajuste con delta positivo
	MovementTypeStockOut     = "stock_out"     // ajuste con delta negativo
)

// StockMovement es un registro inmutable del libro de movimientos: un delta
// firmado sobre la cantidad de un producto. Las filas nunca se actualizan ni se
// eliminan individualmente (al borrar el producto, el esquema las elimina en cascada).
// ID es un bigserial: identidad monótona creciente para ordenar junto a CreatedAt.
type StockMovement struct {
	ID           int64
	ProductID    string
	Quantity     int    // positivo entrada, negativo salida
	MovementType string // initial_stock, stock_in, stock_out o texto del llamador
	Notes        string
	CreatedAt    time.Time
}
