package checkout

import (
	"errors"
	"time"

	"gemstore/internal/domain/item"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart = errors.New("checkout requires at least one line item")
)

// Snapshot is an immutable, priced cart awaiting payment. Prices are locked
// at creation time and never revalidated against the catalog.
type Snapshot struct {
	id            uuid.UUID
	number        string
	userID        uuid.UUID
	lines         []item.Line
	totalCents    int64
	settled       bool
	intentCreated bool
	createdAt     time.Time
}

// NewSnapshot prices the cart and freezes it. The total charges each line's
// current unit price exactly once, independent of the requested quantity.
// That matches the established storefront contract; see DESIGN.md before
// changing it.
func NewSnapshot(number string, userID uuid.UUID, lines []item.Line, now time.Time) (*Snapshot, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		total += l.UnitPriceCents
	}

	frozen := make([]item.Line, len(lines))
	copy(frozen, lines)

	return &Snapshot{
		id:         uuid.New(),
		number:     number,
		userID:     userID,
		lines:      frozen,
		totalCents: total,
		createdAt:  now,
	}, nil
}

func ReconstructSnapshot(
	id uuid.UUID,
	num string,
	userID uuid.UUID,
	lines []item.Line,
	totalCents int64,
	settled, intentCreated bool,
	createdAt time.Time,
) *Snapshot {
	return &Snapshot{
		id:            id,
		number:        num,
		userID:        userID,
		lines:         lines,
		totalCents:    totalCents,
		settled:       settled,
		intentCreated: intentCreated,
		createdAt:     createdAt,
	}
}

func (s *Snapshot) ExpiredAt(now time.Time, retention time.Duration) bool {
	return now.Sub(s.createdAt) > retention
}

func (s *Snapshot) ID() uuid.UUID        { return s.id }
func (s *Snapshot) Number() string       { return s.number }
func (s *Snapshot) UserID() uuid.UUID    { return s.userID }
func (s *Snapshot) Lines() []item.Line   { return s.lines }
func (s *Snapshot) TotalCents() int64    { return s.totalCents }
func (s *Snapshot) Settled() bool        { return s.settled }
func (s *Snapshot) IntentCreated() bool  { return s.intentCreated }
func (s *Snapshot) CreatedAt() time.Time { return s.createdAt }
