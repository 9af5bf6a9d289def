// Package pdf implementa la generación del informe financiero en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tostaduría + Dueño  │  Rango del informe + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos / Costo estimado / Utilidad bruta        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Ventas | Ingresos  (tendencia 6 meses)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Inventario / Ticket promedio / Margen             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/beanshub/roastery-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 101, Green: 67, Blue: 33}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Los montos se presentan en Rupia indonesia con agrupación local.
var rupiahPrinter = message.NewPrinter(language.Indonesian)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateFinancialReportPDF genera el PDF del informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateFinancialReportPDF(
	_ context.Context,
	report *dto.FinancialReportResponse,
	ownerName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe Financiero", true).
		WithAuthor(ownerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, ownerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(trendHeaderRow())
	for _, r := range trendRows(report.MonthlyTrend) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tostaduría (izq) y rango del informe (der).
func headerRow(report *dto.FinancialReportResponse, ownerName string) core.Row {
	rango := fmt.Sprintf("%s — %s",
		report.StartDate.Format("02/01/2006"),
		report.EndDate.Format("02/01/2006"),
	)
	return row.New(18).Add(
		col.New(7).Add(
			text.New("BeansHub", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(ownerName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("INFORME FINANCIERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: ingresos, costo estimado y utilidad bruta.
func summaryRow(report *dto.FinancialReportResponse) core.Row {
	cell := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7}),
		)
	}
	return row.New(16).Add(
		cell("INGRESOS", formatRupiah(report.Revenue), 4),
		cell("COSTO ESTIMADO", formatRupiah(report.EstimatedCOGS), 4),
		cell("UTILIDAD BRUTA", formatRupiah(report.GrossProfit), 4),
	)
}

// trendHeaderRow: cabecera de la tabla de tendencia mensual.
func trendHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Mes", 4, align.Left),
		h("Ventas", 3, align.Center),
		h("Ingresos", 5, align.Right),
	)
}

// trendRows: una fila por mes de la tendencia.
func trendRows(trend []dto.MonthlyRevenue) []core.Row {
	result := make([]core.Row, 0, len(trend))
	for _, month := range trend {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				month.Month,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d", month.SalesCount),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				formatRupiah(month.Revenue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque final con inventario, ticket promedio y margen.
func totalsRow(report *dto.FinancialReportResponse) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Valor del inventario:", 2),
			label("Ticket promedio:", 9),
			grandLabel("MARGEN BRUTO:", 17),
		),
		col.New(4).Add(
			value(formatRupiah(report.InventoryValue), 2),
			value(formatRupiah(report.AverageOrderValue), 9),
			grandValue(fmt.Sprintf("%.1f%%", report.GrossMarginPercent), 17),
		),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatRupiah presenta un monto como "Rp 1.250.000" con agrupación id-ID.
func formatRupiah(d decimal.Decimal) string {
	return rupiahPrinter.Sprintf("Rp %v",
		number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(0)))
}
