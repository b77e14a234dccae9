package invoice

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gemstore/internal/domain/address"
	"gemstore/internal/domain/item"

	"github.com/google/uuid"
)

var (
	ErrMissingOrderNumber = errors.New("invoice requires an order number")
	ErrEmptyInvoice       = errors.New("invoice requires at least one line item")
)

const (
	// NumberPrefix is the fixed invoice number prefix.
	NumberPrefix = "GEMSTORE"

	// TaxRateLabel and the 0.81 net factor encode the tax-inclusive pricing
	// assumption: gross totals already contain 19% VAT.
	TaxRateLabel = "19%"
	netFactor    = 0.81

	PaymentMethodLabel = "PayPal"
)

// FormatNumber renders a date-scoped invoice number, e.g.
// "GEMSTORE-2026-09-01-000042". The 6-digit counter resets daily.
func FormatNumber(date time.Time, counter int64) string {
	return fmt.Sprintf("%s-%04d-%02d-%02d-%06d", NumberPrefix, date.Year(), int(date.Month()), date.Day(), counter)
}

// NetCents derives the tax-free amount from a gross total, rounded to the
// nearest cent.
func NetCents(grossCents int64) int64 {
	return int64(math.Round(float64(grossCents) * netFactor))
}

// Invoice is the immutable billing document, created exactly once per order
// right after order persistence. It freezes addresses, lines and totals;
// nothing mutates it afterwards.
type Invoice struct {
	id                   uuid.UUID
	number               string
	issueDate            time.Time
	orderDate            time.Time
	orderNumber          string
	billingAddress       address.Address
	shippingAddress      address.Address
	lines                []item.Line
	totalCents           int64
	totalWithoutTaxCents int64
	tax                  string
	payment              string
}

func NewInvoice(
	num string,
	orderNumber string,
	billing, shipping address.Address,
	lines []item.Line,
	totalCents int64,
	issueDate time.Time,
) (*Invoice, error) {
	if orderNumber == "" {
		return nil, ErrMissingOrderNumber
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInvoice
	}

	frozen := make([]item.Line, len(lines))
	copy(frozen, lines)

	return &Invoice{
		id:                   uuid.New(),
		number:               num,
		issueDate:            issueDate,
		orderDate:            issueDate,
		orderNumber:          orderNumber,
		billingAddress:       billing,
		shippingAddress:      shipping,
		lines:                frozen,
		totalCents:           totalCents,
		totalWithoutTaxCents: NetCents(totalCents),
		tax:                  TaxRateLabel,
		payment:              PaymentMethodLabel,
	}, nil
}

func ReconstructInvoice(
	id uuid.UUID,
	num string,
	issueDate, orderDate time.Time,
	orderNumber string,
	billing, shipping address.Address,
	lines []item.Line,
	totalCents, totalWithoutTaxCents int64,
	tax, payment string,
) *Invoice {
	return &Invoice{
		id:                   id,
		number:               num,
		issueDate:            issueDate,
		orderDate:            orderDate,
		orderNumber:          orderNumber,
		billingAddress:       billing,
		shippingAddress:      shipping,
		lines:                lines,
		totalCents:           totalCents,
		totalWithoutTaxCents: totalWithoutTaxCents,
		tax:                  tax,
		payment:              payment,
	}
}

func (i *Invoice) ID() uuid.UUID                    { return i.id }
func (i *Invoice) Number() string                   { return i.number }
func (i *Invoice) IssueDate() time.Time             { return i.issueDate }
func (i *Invoice) OrderDate() time.Time             { return i.orderDate }
func (i *Invoice) OrderNumber() string              { return i.orderNumber }
func (i *Invoice) BillingAddress() address.Address  { return i.billingAddress }
func (i *Invoice) ShippingAddress() address.Address { return i.shippingAddress }
func (i *Invoice) Lines() []item.Line               { return i.lines }
func (i *Invoice) TotalCents() int64                { return i.totalCents }
func (i *Invoice) TotalWithoutTaxCents() int64      { return i.totalWithoutTaxCents }
func (i *Invoice) Tax() string                      { return i.tax }
func (i *Invoice) Payment() string                  { return i.payment }
