// Sales summary report, A4 via Maroto v2.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Salon name + "Sales Summary" + period               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Invoice No | Date | Customer | Payment | Total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: invoice count / gross total                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/salonpro/salonpro-api/internal/application/billing"
	"github.com/salonpro/salonpro-api/internal/domain/entity"
	"github.com/salonpro/salonpro-api/internal/render"
)

var (
	reportAccent = &props.Color{Red: 136, Green: 14, Blue: 79}
	reportGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.SalesReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator renders the sales summary with Maroto v2.
type MarotoReportGenerator struct {
	salonName      string
	currencySymbol string
}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator(salonName, currencySymbol string) *MarotoReportGenerator {
	return &MarotoReportGenerator{salonName: salonName, currencySymbol: currencySymbol}
}

// GenerateSalesReport renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(
	_ context.Context,
	period billing.ReportPeriod,
	invoices []*entity.Invoice,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Summary", true).
		WithAuthor(g.salonName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(period))
	m.AddRows(line.NewRow(1, props.Line{Color: reportAccent, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableRows(invoices) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: reportAccent, Thickness: 0.3}))
	m.AddRows(g.totalsRow(period))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("report: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: salon name (left), report title + period (right).
func (g *MarotoReportGenerator) headerRow(period billing.ReportPeriod) core.Row {
	window := fmt.Sprintf("%s - %s",
		period.From.Format("02/01/2006"),
		period.To.AddDate(0, 0, -1).Format("02/01/2006"),
	)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.salonName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: reportAccent, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("SALES SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: reportAccent, Top: 1,
			}),
			text.New(window, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: reportGray,
			}),
		),
	)
}

// tableHeaderRow: column labels for the invoice table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Invoice No", 3, align.Left),
		h("Date", 2, align.Center),
		h("Customer", 3, align.Left),
		h("Payment", 2, align.Center),
		h("Total", 2, align.Right),
	)
}

// tableRows: one row per invoice.
func (g *MarotoReportGenerator) tableRows(invoices []*entity.Invoice) []core.Row {
	result := make([]core.Row, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(inv.InvoiceNumber, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(inv.BillingDate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(inv.Customer.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(inv.PaymentMethod, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(
				render.FormatAmount(g.currencySymbol, inv.TotalPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: invoice count and gross total, right aligned.
func (g *MarotoReportGenerator) totalsRow(period billing.ReportPeriod) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("%d invoices", period.InvoiceCount), props.Text{
				Size: 9, Color: reportGray, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL  "+render.FormatAmount(g.currencySymbol, period.GrossTotal), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: reportAccent, Top: 2,
			}),
		),
	)
}
