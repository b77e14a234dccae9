//go:build unit || e2e

package builder

import (
	"time"

	domcheckout "gemstore/internal/domain/checkout"
	"gemstore/internal/domain/item"
	reqdto "gemstore/internal/handler/dto/request"
	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	Number        string
	UserID        uuid.UUID
	Lines         []item.Line
	Settled       bool
	IntentCreated bool
	CreatedAt     time.Time
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Number: "482-019-337-204",
		UserID: uuid.New(),
		Lines: []item.Line{
			{ItemNumber: "GEM-0001", Name: "Amethyst Ring", UnitPriceCents: 2500, Quantity: 2},
			{ItemNumber: "GEM-0002", Name: "Opal Pendant", UnitPriceCents: 1000, Quantity: 1},
		},
		CreatedAt: time.Now(),
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

// TotalCents mirrors the pricing rule: each line contributes its unit price
// once, regardless of quantity.
func (b *CheckoutBuilder) TotalCents() int64 {
	var total int64
	for _, l := range b.Lines {
		total += l.UnitPriceCents
	}
	return total
}

// Build methods
func (b *CheckoutBuilder) BuildDomain() (*domcheckout.Snapshot, error) {
	return domcheckout.NewSnapshot(b.Number, b.UserID, b.Lines, b.CreatedAt)
}

func (b *CheckoutBuilder) BuildSnapshot() *domcheckout.Snapshot {
	return domcheckout.ReconstructSnapshot(
		uuid.New(), b.Number, b.UserID, b.Lines, b.TotalCents(),
		b.Settled, b.IntentCreated, b.CreatedAt,
	)
}

func (b *CheckoutBuilder) BuildView() *queries.CheckoutView {
	return &queries.CheckoutView{
		Number:        b.Number,
		UserID:        b.UserID,
		Lines:         b.Lines,
		TotalCents:    b.TotalCents(),
		Settled:       b.Settled,
		IntentCreated: b.IntentCreated,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *CheckoutBuilder) BuildDTO() reqdto.CreateCheckoutRequest {
	lines := make([]reqdto.CheckoutLine, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = reqdto.CheckoutLine{ItemNumber: l.ItemNumber, Quantity: l.Quantity}
	}
	return reqdto.CreateCheckoutRequest{Lines: lines}
}

func (b *CheckoutBuilder) BuildInputs() []commands.CheckoutLineInput {
	inputs := make([]commands.CheckoutLineInput, len(b.Lines))
	for i, l := range b.Lines {
		inputs[i] = commands.CheckoutLineInput{ItemNumber: l.ItemNumber, Quantity: l.Quantity}
	}
	return inputs
}

// Fluent builder methods
func (b *CheckoutBuilder) WithNumber(num string) *CheckoutBuilder {
	b.Number = num
	return b
}

func (b *CheckoutBuilder) WithUserID(userID uuid.UUID) *CheckoutBuilder {
	b.UserID = userID
	return b
}

func (b *CheckoutBuilder) WithLines(lines []item.Line) *CheckoutBuilder {
	b.Lines = lines
	return b
}

func (b *CheckoutBuilder) WithCreatedAt(createdAt time.Time) *CheckoutBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *CheckoutBuilder) AsSettled() *CheckoutBuilder {
	b.Settled = true
	return b
}

func (b *CheckoutBuilder) AsIntentCreated() *CheckoutBuilder {
	b.IntentCreated = true
	return b
}
