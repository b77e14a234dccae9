package order

import (
	"errors"
	"time"

	"gemstore/internal/domain/item"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder            = errors.New("order requires at least one line item")
	ErrMissingTransaction    = errors.New("order requires a gateway transaction id")
	ErrAlreadyCanceled       = errors.New("order is already canceled")
	ErrNotCancelable         = errors.New("order is not in a cancelable state")
	ErrInvalidState          = errors.New("invalid order state")
	ErrOwnershipViolation    = errors.New("caller does not own this order")
	ErrCancellationForbidden = errors.New("caller may not cancel this order")
)

// State is the order lifecycle. Waiting is the initial state after capture;
// Canceled is terminal. Fulfilled exists for the shipping flow but no
// transition sets it from this core yet.
type State string

const (
	StateWaiting   State = "Waiting"
	StateCanceled  State = "Canceled"
	StateFulfilled State = "Fulfilled"
)

func (s State) IsValid() bool {
	switch s {
	case StateWaiting, StateCanceled, StateFulfilled:
		return true
	default:
		return false
	}
}

func NewState(s string) (State, error) {
	st := State(s)
	if !st.IsValid() {
		return "", ErrInvalidState
	}
	return st, nil
}

// Order is a settled checkout: funds captured, inventory reserved. The
// transaction id is the gateway capture identifier and doubles as the
// idempotency key against double-delivered capture confirmations.
type Order struct {
	id          uuid.UUID
	number      string
	userID      uuid.UUID
	lines       []item.Line
	totalCents  int64
	state       State
	transaction string
	createdAt   time.Time
}

func NewOrder(num string, userID uuid.UUID, lines []item.Line, totalCents int64, transaction string, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if transaction == "" {
		return nil, ErrMissingTransaction
	}

	frozen := make([]item.Line, len(lines))
	copy(frozen, lines)

	return &Order{
		id:          uuid.New(),
		number:      num,
		userID:      userID,
		lines:       frozen,
		totalCents:  totalCents,
		state:       StateWaiting,
		transaction: transaction,
		createdAt:   now,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	num string,
	userID uuid.UUID,
	lines []item.Line,
	totalCents int64,
	state State,
	transaction string,
	createdAt time.Time,
) *Order {
	return &Order{
		id:          id,
		number:      num,
		userID:      userID,
		lines:       lines,
		totalCents:  totalCents,
		state:       state,
		transaction: transaction,
		createdAt:   createdAt,
	}
}

// AuthorizeCancel decides whether the caller may cancel this order.
// Owners may cancel only while the order is Waiting; an override capability
// (admin) may cancel any order that is not already canceled.
func (o *Order) AuthorizeCancel(callerID uuid.UUID, override bool) error {
	if o.state == StateCanceled {
		return ErrAlreadyCanceled
	}
	if override {
		return nil
	}
	if o.userID != callerID {
		return ErrOwnershipViolation
	}
	if o.state != StateWaiting {
		return ErrNotCancelable
	}
	return nil
}

func (o *Order) IsCanceled() bool {
	return o.state == StateCanceled
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) Number() string       { return o.number }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) Lines() []item.Line   { return o.lines }
func (o *Order) TotalCents() int64    { return o.totalCents }
func (o *Order) State() State         { return o.state }
func (o *Order) Transaction() string  { return o.transaction }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
