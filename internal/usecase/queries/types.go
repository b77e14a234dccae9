package queries

import (
	"context"
	"time"

	"gemstore/internal/domain/address"
	"gemstore/internal/domain/item"
	"gemstore/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CheckoutView struct {
	Number        string      `json:"number"`
	UserID        uuid.UUID   `json:"user_id"`
	Lines         []item.Line `json:"lines"`
	TotalCents    int64       `json:"total_cents"`
	Settled       bool        `json:"settled"`
	IntentCreated bool        `json:"intent_created"`
	CreatedAt     time.Time   `json:"created_at"`
}

type OrderView struct {
	Number      string      `json:"number"`
	UserID      uuid.UUID   `json:"user_id"`
	Lines       []item.Line `json:"lines"`
	TotalCents  int64       `json:"total_cents"`
	State       string      `json:"state"`
	Transaction string      `json:"transaction"`
	CreatedAt   time.Time   `json:"created_at"`
}

type InvoiceView struct {
	Number               string          `json:"number"`
	IssueDate            time.Time       `json:"issue_date"`
	OrderDate            time.Time       `json:"order_date"`
	OrderNumber          string          `json:"order_number"`
	BillingAddress       address.Address `json:"billing_address"`
	ShippingAddress      address.Address `json:"shipping_address"`
	Lines                []item.Line     `json:"lines"`
	TotalCents           int64           `json:"total_cents"`
	TotalWithoutTaxCents int64           `json:"total_without_tax_cents"`
	Tax                  string          `json:"tax"`
	Payment              string          `json:"payment"`
}

// Page is plain offset pagination, matching the storefront's admin views.
type Page struct {
	Number int
	Size   int
}

func (p Page) Normalize() Page {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 || p.Size > 200 {
		p.Size = 50
	}
	return p
}

func (p Page) Offset() int32 {
	return int32(p.Number * p.Size)
}

func (p Page) Limit() int32 {
	return int32(p.Size)
}

type CheckoutQueries interface {
	GetByNumber(ctx context.Context, num string) (*CheckoutView, error)
	List(ctx context.Context, actor shared.Actor, page Page) ([]*CheckoutView, error)
}

type OrderQueries interface {
	GetByNumber(ctx context.Context, num string) (*OrderView, error)
	GetByTransaction(ctx context.Context, actor shared.Actor, transaction string) (*OrderView, error)
	List(ctx context.Context, actor shared.Actor, page Page) ([]*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*OrderView, error)
}

type InvoiceQueries interface {
	GetByNumber(ctx context.Context, num string) (*InvoiceView, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*InvoiceView, error)
	RenderByNumber(ctx context.Context, num string) ([]byte, error)
	RenderByOrderNumber(ctx context.Context, orderNumber string) (string, []byte, error)
}

// Read store ports implemented by internal/infra/repository.

type CheckoutReadStore interface {
	ViewByNumber(ctx context.Context, num string) (*CheckoutView, error)
	ListPaged(ctx context.Context, limit, offset int32) ([]*CheckoutView, error)
}

type OrderReadStore interface {
	ViewByNumber(ctx context.Context, num string) (*OrderView, error)
	ViewByTransaction(ctx context.Context, transaction string) (*OrderView, error)
	ListPaged(ctx context.Context, limit, offset int32) ([]*OrderView, error)
	ListByUserPaged(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*OrderView, error)
}

type InvoiceReadStore interface {
	ViewByNumber(ctx context.Context, num string) (*InvoiceView, error)
	ViewByOrderNumber(ctx context.Context, orderNumber string) (*InvoiceView, error)
}

// DocumentRenderer turns a stored invoice into its portable document bytes.
type DocumentRenderer interface {
	Render(inv *InvoiceView) ([]byte, error)
}
