package entity

import "time"

// Category representa una categoría de productos (Electrónica, Ropa, etc.).
// Al eliminarla, los productos asociados quedan con la referencia en NULL (regla en el esquema).
type Category struct {
	ID          string
	Name        string // único global
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
