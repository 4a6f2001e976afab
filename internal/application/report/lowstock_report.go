package report

import (
	"context"
	"time"

	"github.com/JoeAlexBV/warehouse-api/internal/domain/entity"
	"github.com/JoeAlexBV/warehouse-api/internal/domain/repository"
)

// LowStockPDFGenerator puerto de generación del PDF de reposición.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}

// LowStockReportUseCase genera el reporte imprimible de productos bajo su
// nivel de reorden, para planificación de compras.
type LowStockReportUseCase struct {
	productRepo repository.ProductRepository
	generator   LowStockPDFGenerator
}

// NewLowStockReportUseCase construye el caso de uso de reporte.
func NewLowStockReportUseCase(productRepo repository.ProductRepository, generator LowStockPDFGenerator) *LowStockReportUseCase {
	return &LowStockReportUseCase{productRepo: productRepo, generator: generator}
}

// Generate consulta los productos en o bajo el nivel de reorden y devuelve el PDF.
func (uc *LowStockReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLowStockPDF(ctx, products, time.Now())
}
