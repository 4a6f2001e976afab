package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/JoeAlexBV/warehouse-api/internal/domain"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/entity"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Tabla insert-only: este adaptador no expone update ni delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento. La identidad la genera el bigserial; se
// devuelve en movement.ID. Un producto inexistente rompe la FK -> ErrNotFound.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	notes := (*string)(nil)
	if movement.Notes != "" {
		notes = &movement.Notes
	}
	query := `
		INSERT INTO stock_movements (product_id, quantity, movement_type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Quantity, movement.MovementType, notes, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista movimientos de un producto, más reciente primero.
// El id bigserial desempata movimientos con el mismo created_at para que el
// orden sea estable entre páginas.
func (r *StockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity, movement_type, notes, created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var notes *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.MovementType, &notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if notes != nil {
			m.Notes = *notes
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
