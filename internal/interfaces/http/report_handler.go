package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JoeAlexBV/warehouse-api/internal/application/dto"
	"github.com/JoeAlexBV/warehouse-api/internal/application/report"
)

// ReportHandler maneja la descarga de reportes PDF.
type ReportHandler struct {
	lowStock *report.LowStockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(lowStock *report.LowStockReportUseCase) *ReportHandler {
	return &ReportHandler{lowStock: lowStock}
}

// LowStockPDF godoc
// @Summary      Reporte PDF de reposición
// @Description  PDF con los productos en o por debajo de su nivel de reorden.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/reports/low-stock/pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.lowStock.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("reposicion_%s.pdf", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
