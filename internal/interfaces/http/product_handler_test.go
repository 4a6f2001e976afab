package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeAlexBV/warehouse-api/internal/application/dto"
	"github.com/JoeAlexBV/warehouse-api/internal/application/inventory"
	"github.com/JoeAlexBV/warehouse-api/internal/application/usecase"
	"github.com/JoeAlexBV/warehouse-api/internal/domain"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/entity"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
	apphttp "github.com/JoeAlexBV/warehouse-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos que necesita el handler de productos
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	order []string
	byID  map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.order = append(r.order, p.ID)
		r.byID[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.order = append(r.order, p.ID)
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error)      { return r.byID[id], nil }
func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.byID[id], nil }

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) UpdateStock(productID string, quantity int) error {
	p, ok := r.byID[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *memProductRepo) List(_ repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		if p := r.byID[id]; p != nil {
			out = append(out, p)
		}
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

func (r *memProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		if p := r.byID[id]; p != nil && p.NeedsReorder() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return (out[i].ReorderLevel - out[i].StockQuantity) > (out[j].ReorderLevel - out[j].StockQuantity)
	})
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type memMovementRepo struct {
	nextID    int64
	movements []*entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.nextID++
	m.ID = r.nextID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	stored := *m
	r.movements = append(r.movements, &stored)
	return nil
}

func (r *memMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
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

// stubs de categoría/proveedor: el handler de productos no los ejercita aquí
type stubCategoryRepo struct{}

func (stubCategoryRepo) Create(*entity.Category) error              { return nil }
func (stubCategoryRepo) GetByID(string) (*entity.Category, error)   { return nil, nil }
func (stubCategoryRepo) GetByName(string) (*entity.Category, error) { return nil, nil }
func (stubCategoryRepo) Update(*entity.Category) error              { return nil }
func (stubCategoryRepo) List(int, int) ([]*entity.Category, error)  { return nil, nil }
func (stubCategoryRepo) Delete(string) error                        { return nil }

type stubSupplierRepo struct{}

func (stubSupplierRepo) Create(*entity.Supplier) error              { return nil }
func (stubSupplierRepo) GetByID(string) (*entity.Supplier, error)   { return nil, nil }
func (stubSupplierRepo) GetByName(string) (*entity.Supplier, error) { return nil, nil }
func (stubSupplierRepo) Update(*entity.Supplier) error              { return nil }
func (stubSupplierRepo) List(int, int) ([]*entity.Supplier, error)  { return nil, nil }
func (stubSupplierRepo) Delete(string) error                        { return nil }

type memTxRunner struct {
	products  *memProductRepo
	movements *memMovementRepo
}

func (t *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(t.products, t.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba: rutas de producto protegidas con el middleware real
// ──────────────────────────────────────────────────────────────────────────────

func buildProductApp(products *memProductRepo, movements *memMovementRepo) *fiber.App {
	txRunner := &memTxRunner{products: products, movements: movements}
	productUC := usecase.NewProductUseCase(products, stubCategoryRepo{}, stubSupplierRepo{}, txRunner)
	adjustUC := inventory.NewAdjustStockUseCase(txRunner, "")
	ledgerUC := inventory.NewStockLedgerUseCase(products, movements)
	reorderUC := inventory.NewReorderUseCase(products)

	app := fiber.New()
	handler := apphttp.NewProductHandler(productUC, adjustUC, ledgerUC, reorderUC)
	group := app.Group("/api/v1/products", apphttp.AuthMiddleware(testJWTSecret))
	group.Post("/", handler.Create)
	group.Get("/", handler.List)
	group.Get("/low-stock", handler.LowStock)
	group.Get("/:id", handler.GetByID)
	group.Put("/:id", handler.Update)
	group.Delete("/:id", handler.Delete)
	group.Post("/:id/adjust-stock", handler.AdjustStock)
	group.Get("/:id/stock-history", handler.StockHistory)
	return app
}

func seedProduct(stock, reorder int) *entity.Product {
	return &entity.Product{
		ID:            "00000000-0000-0000-0000-0000000000aa",
		Name:          "Tornillo M8",
		SKU:           "TOR-M8",
		Price:         decimal.NewFromFloat(1.50),
		StockQuantity: stock,
		ReorderLevel:  reorder,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", testToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajuste de stock vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStockEndpoint_EntradaValida(t *testing.T) {
	products := newMemProductRepo(seedProduct(10, 5))
	app := buildProductApp(products, &memMovementRepo{})

	resp := doJSON(t, app, http.MethodPost,
		"/api/v1/products/00000000-0000-0000-0000-0000000000aa/adjust-stock",
		dto.StockAdjustmentRequest{Quantity: 20, Notes: "compra"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 30, out.StockQuantity)
	assert.False(t, out.NeedsReorder)
}

func TestAdjustStockEndpoint_StockInsuficiente_Retorna400(t *testing.T) {
	products := newMemProductRepo(seedProduct(10, 5))
	movements := &memMovementRepo{}
	app := buildProductApp(products, movements)

	resp := doJSON(t, app, http.MethodPost,
		"/api/v1/products/00000000-0000-0000-0000-0000000000aa/adjust-stock",
		dto.StockAdjustmentRequest{Quantity: -15})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Contains(t, out.Message, "actual 10", "el error debe incluir el stock actual")
	assert.Contains(t, out.Message, "solicitado 15", "el error debe incluir lo solicitado")

	p, _ := products.GetByID("00000000-0000-0000-0000-0000000000aa")
	assert.Equal(t, 10, p.StockQuantity, "el rechazo no debe tener efectos")
	assert.Empty(t, movements.movements)
}

func TestAdjustStockEndpoint_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildProductApp(newMemProductRepo(), &memMovementRepo{})

	resp := doJSON(t, app, http.MethodPost,
		"/api/v1/products/no-existe/adjust-stock",
		dto.StockAdjustmentRequest{Quantity: 5})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdjustStockEndpoint_SinToken_Retorna401(t *testing.T) {
	app := buildProductApp(newMemProductRepo(seedProduct(10, 5)), &memMovementRepo{})

	raw, _ := json.Marshal(dto.StockAdjustmentRequest{Quantity: 5})
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/products/00000000-0000-0000-0000-0000000000aa/adjust-stock",
		bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial y reposición vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestStockHistoryEndpoint_MasRecientePrimero(t *testing.T) {
	products := newMemProductRepo(seedProduct(10, 5))
	movements := &memMovementRepo{}
	app := buildProductApp(products, movements)

	for _, delta := range []int{20, -5} {
		resp := doJSON(t, app, http.MethodPost,
			"/api/v1/products/00000000-0000-0000-0000-0000000000aa/adjust-stock",
			dto.StockAdjustmentRequest{Quantity: delta})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet,
		"/api/v1/products/00000000-0000-0000-0000-0000000000aa/stock-history", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.StockMovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 2)
	assert.Equal(t, -5, out[0].Quantity, "el movimiento más reciente va primero")
	assert.Equal(t, 20, out[1].Quantity)
}

func TestLowStockEndpoint_NoChocaConRutaDeID(t *testing.T) {
	// "low-stock" debe resolverse como ruta propia, no como :id
	low := seedProduct(2, 5)
	sano := &entity.Product{
		ID: "00000000-0000-0000-0000-0000000000bb", Name: "Tuerca M8", SKU: "TUE-M8",
		Price: decimal.NewFromInt(1), StockQuantity: 100, ReorderLevel: 5,
	}
	app := buildProductApp(newMemProductRepo(low, sano), &memMovementRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/v1/products/low-stock", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.LowStockProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "TOR-M8", out[0].SKU)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD básico vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProductEndpoint_Retorna201(t *testing.T) {
	products := newMemProductRepo()
	movements := &memMovementRepo{}
	app := buildProductApp(products, movements)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products/", dto.CreateProductRequest{
		Name:          "Tornillo M8",
		SKU:           "TOR-M8",
		Price:         decimal.NewFromFloat(1.50),
		StockQuantity: 10,
		ReorderLevel:  5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 10, out.StockQuantity)
	require.Len(t, movements.movements, 1, "el alta con stock inicial registra initial_stock")
	assert.Equal(t, entity.MovementTypeInitialStock, movements.movements[0].MovementType)
}

func TestGetProductEndpoint_NoExiste_Retorna404(t *testing.T) {
	app := buildProductApp(newMemProductRepo(), &memMovementRepo{})

	resp := doJSON(t, app, http.MethodGet, "/api/v1/products/no-existe", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}
