//go:build unit || e2e

package builder

import (
	"time"

	"gemstore/internal/domain/address"
	dominvoice "gemstore/internal/domain/invoice"
	"gemstore/internal/domain/item"
	"gemstore/internal/usecase/queries"
)

type InvoiceBuilder struct {
	Counter     int64
	IssueDate   time.Time
	OrderNumber string
	Billing     address.Address
	Shipping    address.Address
	Lines       []item.Line
	TotalCents  int64
}

func NewInvoiceBuilder() *InvoiceBuilder {
	addr := address.Address{
		Name:       "Max Mustermann",
		Street:     "Musterstrasse 12",
		City:       "Berlin",
		PostalCode: "10115",
		Country:    "Germany",
	}
	return &InvoiceBuilder{
		Counter:     1,
		IssueDate:   time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		OrderNumber: "736-920-114-582",
		Billing:     addr,
		Shipping:    addr,
		Lines: []item.Line{
			{ItemNumber: "GEM-0001", Name: "Amethyst Ring", UnitPriceCents: 2500, Quantity: 2},
			{ItemNumber: "GEM-0002", Name: "Opal Pendant", UnitPriceCents: 1000, Quantity: 1},
		},
		TotalCents: 3500,
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

func (b *InvoiceBuilder) Number() string {
	return dominvoice.FormatNumber(b.IssueDate, b.Counter)
}

// Build methods
func (b *InvoiceBuilder) BuildDomain() (*dominvoice.Invoice, error) {
	return dominvoice.NewInvoice(b.Number(), b.OrderNumber, b.Billing, b.Shipping, b.Lines, b.TotalCents, b.IssueDate)
}

func (b *InvoiceBuilder) BuildView() *queries.InvoiceView {
	return &queries.InvoiceView{
		Number:               b.Number(),
		IssueDate:            b.IssueDate,
		OrderDate:            b.IssueDate,
		OrderNumber:          b.OrderNumber,
		BillingAddress:       b.Billing,
		ShippingAddress:      b.Shipping,
		Lines:                b.Lines,
		TotalCents:           b.TotalCents,
		TotalWithoutTaxCents: dominvoice.NetCents(b.TotalCents),
		Tax:                  dominvoice.TaxRateLabel,
		Payment:              dominvoice.PaymentMethodLabel,
	}
}

// Fluent builder methods
func (b *InvoiceBuilder) WithCounter(counter int64) *InvoiceBuilder {
	b.Counter = counter
	return b
}

func (b *InvoiceBuilder) WithIssueDate(date time.Time) *InvoiceBuilder {
	b.IssueDate = date
	return b
}

func (b *InvoiceBuilder) WithOrderNumber(num string) *InvoiceBuilder {
	b.OrderNumber = num
	return b
}

func (b *InvoiceBuilder) WithTotalCents(cents int64) *InvoiceBuilder {
	b.TotalCents = cents
	return b
}
