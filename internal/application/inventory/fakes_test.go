package inventory_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/JoeAlexBV/warehouse-api/internal/domain"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/entity"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos de persistencia. Reproducen el contrato de los
// adaptadores reales: (nil, nil) cuando no existe, ordenación del historial por
// created_at DESC con id DESC como desempate.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	order []string
	byID  map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.order = append(r.order, p.ID)
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.byID {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.order = append(r.order, product.ID)
	r.byID[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[product.ID] = product
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, quantity int) error {
	p, ok := r.byID[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		p := r.byID[id]
		if p == nil {
			continue
		}
		if filter.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.SupplierID != "" && (p.SupplierID == nil || *p.SupplierID != filter.SupplierID) {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) &&
				!strings.Contains(strings.ToLower(p.Description), s) &&
				!strings.Contains(strings.ToLower(p.SKU), s) {
				continue
			}
		}
		out = append(out, p)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		if p := r.byID[id]; p != nil && p.NeedsReorder() {
			out = append(out, p)
		}
	}
	// déficit mayor primero, como el adaptador real
	sort.SliceStable(out, func(i, j int) bool {
		return (out[i].ReorderLevel - out[i].StockQuantity) > (out[j].ReorderLevel - out[j].StockQuantity)
	})
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeMovementRepo struct {
	nextID    int64
	movements []*entity.StockMovement
}

func newFakeMovementRepo() *fakeMovementRepo { return &fakeMovementRepo{} }

func (r *fakeMovementRepo) Create(movement *entity.StockMovement) error {
	r.nextID++
	movement.ID = r.nextID
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	stored := *movement
	r.movements = append(r.movements, &stored)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// fakeTxRunner ejecuta fn directamente sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(t.products, t.movements)
}
