// Package pdf genera la versión imprimible del reporte de ventas con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + marketplace │ fecha de emisión             │
//	│  FILTROS: desde / hasta / partner                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Fecha | Producto | Cliente | Partner | Valor     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: ventas / valor total / página x de y               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

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

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// SalesReportPDF renderiza dto.SalesReportResponse.
type SalesReportPDF struct {
	appName string
	now     func() time.Time
}

// NewSalesReportPDF construye el generador. appName aparece en el encabezado.
func NewSalesReportPDF(appName string) *SalesReportPDF {
	return &SalesReportPDF{appName: appName, now: time.Now}
}

// Generate devuelve los bytes del PDF de la página de reporte recibida.
func (g *SalesReportPDF) Generate(_ context.Context, report *dto.SalesReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, g.now()))
	m.AddRows(filtersRow(report.Filters))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Sales) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas para los filtros indicados", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(tableRows(report.Sales)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(appName string, issued time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(appName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Emitido: "+issued.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func filtersRow(f dto.ReportFilters) core.Row {
	partner := "todos"
	if f.PartnerID != nil {
		partner = fmt.Sprintf("#%d", *f.PartnerID)
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Desde: %s   |   Hasta: %s   |   Partner: %s",
			nonEmpty(f.StartDate, "—"),
			nonEmpty(f.EndDate, "—"),
			partner,
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("ID", 1, align.Center),
		h("Fecha", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Cliente", 2, align.Left),
		h("Partner", 2, align.Left),
		h("Valor", 2, align.Right),
	)
}

func tableRows(sales []dto.SalesReportRow) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(sales))
	for _, s := range sales {
		result = append(result, row.New(7).Add(
			cell(fmt.Sprintf("%d", s.ID), 1, align.Center),
			cell(s.CreatedAt.Format("02/01/2006"), 2, align.Left),
			cell(nonEmpty(s.Product.Name, "—"), 3, align.Left),
			cell(nonEmpty(s.Customer.Name, "—"), 2, align.Left),
			cell(nonEmpty(s.Partner.Name, "—"), 2, align.Left),
			cell("$"+formatMoney(s.Value), 2, align.Right),
		))
	}
	return result
}

func totalsRow(r *dto.SalesReportResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Ventas:"),
			label("Valor total:"),
			label("Página:"),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("%d", r.TotalSales), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New("$"+formatMoney(r.TotalValue), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 7,
			}),
			text.New(fmt.Sprintf("%d de %d", r.CurrentPage, r.TotalPages), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 14,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney usa punto de miles y coma decimal con dos decimales.
// Ej: 1500 → "1.500,00", 299.9 → "299,90"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
