// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / stock bajo / compras / ventas / lucro  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Cant. | Mín. | P.Compra | P.Venta │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÚLTIMOS MOVIMIENTOS                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/application/ports"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// MoneyFormatter formatea montos para mostrar (pkg/money).
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

var _ ports.ReportRenderer = (*MarotoReport)(nil)

// MarotoReport implementa ports.ReportRenderer usando Maroto v2.
type MarotoReport struct {
	money MoneyFormatter
}

// NewMarotoReport construye el generador; money formatea los montos.
func NewMarotoReport(money MoneyFormatter) *MarotoReport {
	return &MarotoReport{money: money}
}

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoReport) Render(ctx context.Context, data ports.ReportData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stats := data.Stats
	if stats == nil {
		stats = &dto.DashboardStats{}
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("PRODUCTOS"))
	m.AddRows(productHeaderRow())
	m.AddRows(g.productRows(data.Products)...)

	if len(stats.RecentMovements) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionRow("ÚLTIMOS MOVIMIENTOS"))
		m.AddRows(g.movementRows(stats.RecentMovements)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data ports.ReportData) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(data.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoReport) summaryRow(s *dto.DashboardStats) core.Row {
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Color: c, Top: 6, Align: align.Center}),
		)
	}
	lowColor := colorPrimary
	if s.LowStockProducts > 0 {
		lowColor = colorAlert
	}
	return row.New(14).Add(
		cell("Productos", strconv.Itoa(s.TotalProducts), colorPrimary),
		cell("Stock bajo", strconv.Itoa(s.LowStockProducts), lowColor),
		cell("Unidades", strconv.Itoa(s.TotalQuantity), colorPrimary),
		cell("Compras", g.money.Format(s.TotalPurchases), colorPrimary),
		cell("Ventas", g.money.Format(s.TotalSales), colorPrimary),
		cell("Lucro", g.money.Format(s.Profit), colorPrimary),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func productHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("P. compra", 2, align.Right),
		h("P. venta", 2, align.Right),
	)
}

// productRows una fila por producto; las de stock bajo en rojo.
func (g *MarotoReport) productRows(products []*entity.Product) []core.Row {
	if len(products) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin productos registrados.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		c := colorGray
		name := p.Name
		if p.IsLowStock() {
			c = colorAlert
			name += " (stock bajo)"
		}
		t := func(s string, a align.Type) core.Component {
			return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: c})
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(t(nonEmpty(p.Code, "—"), align.Left)),
			col.New(4).Add(t(name, align.Left)),
			col.New(1).Add(t(strconv.Itoa(p.Quantity), align.Right)),
			col.New(1).Add(t(strconv.Itoa(p.MinQuantity), align.Right)),
			col.New(2).Add(t(g.money.Format(p.PurchasePrice), align.Right)),
			col.New(2).Add(t(g.money.Format(p.SalePrice), align.Right)),
		))
	}
	return rows
}

func (g *MarotoReport) movementRows(movements []dto.MovementResponse) []core.Row {
	rows := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		label := "Entrada"
		if mv.Type == entity.MovementTypeOUT {
			label = "Salida"
		}
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(mv.Date.Format("02/01/2006"), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(label, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(mv.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(mv.Quantity), props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New(g.money.Format(mv.Total), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
