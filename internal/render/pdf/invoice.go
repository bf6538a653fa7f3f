package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/polkiloo/wasul/internal/domain/model"
)

const issueDateLayout = "02 Jan 2006"

// InvoiceRenderer lays out partner invoices as PDF documents.
type InvoiceRenderer struct {
	issuer string
}

// NewInvoiceRenderer creates renderer printing issuer in the document header.
func NewInvoiceRenderer(issuer string) *InvoiceRenderer {
	return &InvoiceRenderer{issuer: issuer}
}

// Render produces the PDF bytes for invoice.
func (r *InvoiceRenderer) Render(invoice model.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, r.issuer, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(4, "INVOICE", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	m.AddRow(22,
		col.New(6).Add(
			text.New("Invoice number: "+invoice.Number, props.Text{Top: 0}),
			text.New("Date of issue: "+invoice.CreatedAt.Format(issueDateLayout), props.Text{Top: 4}),
			text.New("Billing period: "+invoice.BillingPeriod, props.Text{Top: 8}),
			text.New("Status: "+string(invoice.Status), props.Text{Top: 12}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold, Align: align.Right}),
			text.New(invoice.PartnerName, props.Text{Top: 5, Align: align.Right}),
			text.New("API key: "+invoice.KeySnapshot, props.Text{Top: 9, Align: align.Right}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	m.AddRow(10,
		text.NewCol(6, "Address lookups", props.Text{Size: 9}),
		text.NewCol(2, fmt.Sprintf("%d", invoice.Lookups), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, r.money(invoice.Rate, invoice.Currency), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, r.money(invoice.Subtotal, invoice.Currency), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		text.NewCol(6, "Verified deliveries (not billed)", props.Text{Size: 9}),
		text.NewCol(2, fmt.Sprintf("%d", invoice.VerifiedDeliveries), props.Text{Size: 9, Align: align.Right}),
		col.New(4),
	)

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, r.money(invoice.Subtotal, invoice.Currency), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Tax", props.Text{Size: 9}),
		text.NewCol(2, r.money(invoice.Tax, invoice.Currency), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total due", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, r.money(invoice.Total, invoice.Currency), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", invoice.Number, err)
	}

	return doc.GetBytes(), nil
}

func (r *InvoiceRenderer) money(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}
