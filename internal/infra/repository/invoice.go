package repository

import (
	"context"
	"encoding/json"
	"time"

	"gemstore/internal/domain/address"
	"gemstore/internal/domain/invoice"
	"gemstore/internal/domain/item"
	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/pgconv"
	"gemstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(pool db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: pool}
}

// NextNumber increments the per-date counter in a single upsert. The
// RETURNING value is unique per (date, call) even under concurrent invoicing;
// never read-then-write this counter.
func (r *InvoiceRepository) NextNumber(ctx context.Context, tx db.DBTX, date time.Time) (int64, error) {
	var counter int64
	err := tx.QueryRow(ctx, `
		INSERT INTO invoice_counters (date, counter) VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE SET counter = invoice_counters.counter + 1
		RETURNING counter`, pgconv.DateToPgtype(date)).Scan(&counter)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to advance invoice counter", err)
	}

	return counter, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, tx db.DBTX, inv *invoice.Invoice) error {
	lines, err := json.Marshal(inv.Lines())
	if err != nil {
		return infra.WrapRepoErr("failed to encode invoice lines", err)
	}
	billing, err := json.Marshal(inv.BillingAddress())
	if err != nil {
		return infra.WrapRepoErr("failed to encode billing address", err)
	}
	shipping, err := json.Marshal(inv.ShippingAddress())
	if err != nil {
		return infra.WrapRepoErr("failed to encode shipping address", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (
			id, number, issue_date, order_date, order_number,
			billing_address, shipping_address, lines,
			total_cents, total_without_tax_cents, tax, payment
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		inv.ID(), inv.Number(), pgconv.DateToPgtype(inv.IssueDate()), pgconv.DateToPgtype(inv.OrderDate()), inv.OrderNumber(),
		billing, shipping, lines,
		inv.TotalCents(), inv.TotalWithoutTaxCents(), inv.Tax(), inv.Payment(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("invoice number already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create invoice", err)
	}

	return nil
}

func (r *InvoiceRepository) ViewByNumber(ctx context.Context, num string) (*queries.InvoiceView, error) {
	row := r.db.QueryRow(ctx, invoiceSelect+` WHERE number = $1`, num)
	return scanInvoiceView(row)
}

func (r *InvoiceRepository) ViewByOrderNumber(ctx context.Context, orderNumber string) (*queries.InvoiceView, error) {
	row := r.db.QueryRow(ctx, invoiceSelect+` WHERE order_number = $1`, orderNumber)
	return scanInvoiceView(row)
}

const invoiceSelect = `
	SELECT id, number, issue_date, order_date, order_number,
	       billing_address, shipping_address, lines,
	       total_cents, total_without_tax_cents, tax, payment
	FROM invoices`

func scanInvoiceView(row rowScanner) (*queries.InvoiceView, error) {
	var (
		id                 uuid.UUID
		num                string
		issueDate          time.Time
		orderDate          time.Time
		orderNumber        string
		rawBilling         []byte
		rawShipping        []byte
		rawLines           []byte
		totalCents         int64
		totalWithoutTax    int64
		tax, paymentMethod string
	)

	err := row.Scan(&id, &num, &issueDate, &orderDate, &orderNumber,
		&rawBilling, &rawShipping, &rawLines,
		&totalCents, &totalWithoutTax, &tax, &paymentMethod)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan invoice", err)
	}

	var (
		billing  address.Address
		shipping address.Address
		lines    []item.Line
	)
	if err := json.Unmarshal(rawBilling, &billing); err != nil {
		return nil, infra.WrapRepoErr("failed to decode billing address", err)
	}
	if err := json.Unmarshal(rawShipping, &shipping); err != nil {
		return nil, infra.WrapRepoErr("failed to decode shipping address", err)
	}
	if err := json.Unmarshal(rawLines, &lines); err != nil {
		return nil, infra.WrapRepoErr("failed to decode invoice lines", err)
	}

	return &queries.InvoiceView{
		Number:               num,
		IssueDate:            issueDate,
		OrderDate:            orderDate,
		OrderNumber:          orderNumber,
		BillingAddress:       billing,
		ShippingAddress:      shipping,
		Lines:                lines,
		TotalCents:           totalCents,
		TotalWithoutTaxCents: totalWithoutTax,
		Tax:                  tax,
		Payment:              paymentMethod,
	}, nil
}
