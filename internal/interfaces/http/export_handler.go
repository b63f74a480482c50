package http

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tracker/internal/application/ports"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
)

// ProductExporter escribe el catálogo en un formato descargable (csvio.ProductExporter).
type ProductExporter interface {
	Export(w io.Writer, products []*entity.Product) error
	ContentType() string
}

// ExportHandler descargas del catálogo: CSV y reporte PDF.
type ExportHandler struct {
	svc      InventoryService
	csv      ProductExporter
	report   ports.ReportRenderer
	filename string
	title    string
	now      func() time.Time
}

// ExportConfig dependencias del handler de exportación.
type ExportConfig struct {
	CSV      ProductExporter
	Report   ports.ReportRenderer
	Filename string // sin extensión
	Title    string
	Now      func() time.Time
}

// NewExportHandler construye el handler. Filename, Title y Now tienen valores por defecto.
func NewExportHandler(svc InventoryService, cfg ExportConfig) *ExportHandler {
	if cfg.Filename == "" {
		cfg.Filename = "produtos"
	}
	if cfg.Title == "" {
		cfg.Title = "Reporte de inventario"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &ExportHandler{
		svc:      svc,
		csv:      cfg.CSV,
		report:   cfg.Report,
		filename: cfg.Filename,
		title:    cfg.Title,
		now:      cfg.Now,
	}
}

// ProductsCSV godoc
// @Summary      Exportar productos en CSV
// @Tags         export
// @Produce      text/csv
// @Success      200
// @Router       /api/export/products.csv [get]
func (h *ExportHandler) ProductsCSV(c *fiber.Ctx) error {
	products, err := h.svc.Products(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := h.csv.Export(&buf, products); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, h.csv.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, h.filename))
	return c.Send(buf.Bytes())
}

// ReportPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200
// @Router       /api/export/report.pdf [get]
func (h *ExportHandler) ReportPDF(c *fiber.Ctx) error {
	ctx := c.UserContext()
	stats, err := h.svc.DashboardStats(ctx)
	if err != nil {
		return writeError(c, err)
	}
	products, err := h.svc.Products(ctx)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.report.Render(ctx, ports.ReportData{
		Title:       h.title,
		GeneratedAt: h.now(),
		Stats:       stats,
		Products:    products,
	})
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, h.filename))
	return c.Send(out)
}
