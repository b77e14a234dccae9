package commands

import (
	"context"
	"time"

	"gemstore/internal/domain/address"
	"gemstore/internal/domain/checkout"
	"gemstore/internal/domain/invoice"
	"gemstore/internal/domain/item"
	"gemstore/internal/domain/order"
	"gemstore/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside a single database transaction. Everything the
// capture flow persists (stock decrements, order, invoice, notification job)
// commits or rolls back together.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type CheckoutRepository interface {
	Create(ctx context.Context, tx db.DBTX, snap *checkout.Snapshot) error
	FindByNumber(ctx context.Context, num string) (*checkout.Snapshot, error)
	MarkIntentCreated(ctx context.Context, num string) error
	MarkSettled(ctx context.Context, tx db.DBTX, num string) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	FindByNumber(ctx context.Context, tx db.DBTX, num string) (*order.Order, error)
	FindByTransaction(ctx context.Context, transaction string) (*order.Order, error)

	// MarkCanceled flips Waiting (or, with override, any non-canceled state)
	// to Canceled in one conditional update and reports whether a row
	// changed. Zero rows means the order is no longer cancelable.
	MarkCanceled(ctx context.Context, tx db.DBTX, num string, override bool) (bool, error)
}

type ItemRepository interface {
	FindByNumber(ctx context.Context, num string) (*item.Item, error)

	// AdjustStock applies a signed delta as a single conditional update that
	// refuses to take stock negative. It returns the new quantity.
	AdjustStock(ctx context.Context, tx db.DBTX, num string, delta int32) (int32, error)
}

type InvoiceRepository interface {
	// NextNumber atomically increments the per-date counter and returns the
	// new value, creating the row on a date's first invoice.
	NextNumber(ctx context.Context, tx db.DBTX, date time.Time) (int64, error)
	Create(ctx context.Context, tx db.DBTX, inv *invoice.Invoice) error
}

type AddressReadStore interface {
	BillingByUser(ctx context.Context, userID uuid.UUID) (*address.Address, error)
	ShippingByUser(ctx context.Context, userID uuid.UUID) (*address.Address, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// Gateway result shapes. The provider's own payloads stay inside
// internal/infra/gateway; usecases only see these.

type IntentResult struct {
	ID         string
	Status     string
	ApproveURL string
}

type CaptureResult struct {
	IntentID  string
	CaptureID string
	Status    string
}

type RefundResult struct {
	ID     string
	Status string
}

// PaymentGateway wraps the external payment provider. All three operations
// block on network I/O and retry internally (3 attempts, 1s apart) before
// surfacing the last error.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, totalCents int64) (*IntentResult, error)
	Capture(ctx context.Context, intentID string) (*CaptureResult, error)
	Refund(ctx context.Context, captureID string, amountCents int64) (*RefundResult, error)
}
