//go:build unit || e2e

package builder

import (
	"time"

	"gemstore/internal/domain/item"
	domorder "gemstore/internal/domain/order"
	"gemstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	Number      string
	UserID      uuid.UUID
	Lines       []item.Line
	TotalCents  int64
	State       domorder.State
	Transaction string
	CreatedAt   time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Number: "736-920-114-582",
		UserID: uuid.New(),
		Lines: []item.Line{
			{ItemNumber: "GEM-0001", Name: "Amethyst Ring", UnitPriceCents: 2500, Quantity: 2},
		},
		TotalCents:  2500,
		State:       domorder.StateWaiting,
		Transaction: "CAP-7XY1234567890",
		CreatedAt:   time.Now(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() *domorder.Order {
	return domorder.ReconstructOrder(
		uuid.New(), b.Number, b.UserID, b.Lines, b.TotalCents,
		b.State, b.Transaction, b.CreatedAt,
	)
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		Number:      b.Number,
		UserID:      b.UserID,
		Lines:       b.Lines,
		TotalCents:  b.TotalCents,
		State:       string(b.State),
		Transaction: b.Transaction,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *OrderBuilder) WithNumber(num string) *OrderBuilder {
	b.Number = num
	return b
}

func (b *OrderBuilder) WithUserID(userID uuid.UUID) *OrderBuilder {
	b.UserID = userID
	return b
}

func (b *OrderBuilder) WithTransaction(transaction string) *OrderBuilder {
	b.Transaction = transaction
	return b
}

func (b *OrderBuilder) WithTotalCents(cents int64) *OrderBuilder {
	b.TotalCents = cents
	return b
}

func (b *OrderBuilder) AsCanceled() *OrderBuilder {
	b.State = domorder.StateCanceled
	return b
}

func (b *OrderBuilder) AsFulfilled() *OrderBuilder {
	b.State = domorder.StateFulfilled
	return b
}
