//go:build unit

package order_test

import (
	"testing"
	"time"

	"gemstore/internal/domain/item"
	"gemstore/internal/domain/order"
	"gemstore/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	lines := []item.Line{
		{ItemNumber: "GEM-0001", Name: "Amethyst Ring", UnitPriceCents: 2500, Quantity: 2},
	}
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := order.NewOrder("736-920-114-582", uuid.New(), lines, 2500, "CAP-123", now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, order.StateWaiting, actual.State())
		assert.Equal(t, "CAP-123", actual.Transaction())
		assert.False(t, actual.IsCanceled())
	})

	t.Run("empty lines are rejected", func(t *testing.T) {
		_, err := order.NewOrder("736-920-114-582", uuid.New(), nil, 0, "CAP-123", now)
		assert.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("missing transaction is rejected", func(t *testing.T) {
		_, err := order.NewOrder("736-920-114-582", uuid.New(), lines, 2500, "", now)
		assert.ErrorIs(t, err, order.ErrMissingTransaction)
	})
}

func TestAuthorizeCancel(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	cases := []struct {
		name     string
		mutate   func(*builder.OrderBuilder)
		callerID uuid.UUID
		override bool
		errIs    error
	}{
		{
			name:     "owner cancels waiting order",
			callerID: ownerID,
		},
		{
			name:     "stranger may not cancel",
			callerID: strangerID,
			errIs:    order.ErrOwnershipViolation,
		},
		{
			name:     "override cancels another user's order",
			callerID: strangerID,
			override: true,
		},
		{
			name:     "owner may not cancel fulfilled order",
			mutate:   func(b *builder.OrderBuilder) { b.AsFulfilled() },
			callerID: ownerID,
			errIs:    order.ErrNotCancelable,
		},
		{
			name:     "override cancels fulfilled order",
			mutate:   func(b *builder.OrderBuilder) { b.AsFulfilled() },
			callerID: strangerID,
			override: true,
		},
		{
			name:     "already canceled rejects owner",
			mutate:   func(b *builder.OrderBuilder) { b.AsCanceled() },
			callerID: ownerID,
			errIs:    order.ErrAlreadyCanceled,
		},
		{
			name:     "already canceled rejects override too",
			mutate:   func(b *builder.OrderBuilder) { b.AsCanceled() },
			callerID: strangerID,
			override: true,
			errIs:    order.ErrAlreadyCanceled,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewOrderBuilder().WithUserID(ownerID)
			if c.mutate != nil {
				c.mutate(b)
			}
			err := b.BuildDomain().AuthorizeCancel(c.callerID, c.override)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewState(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "waiting", input: "Waiting"},
		{name: "canceled", input: "Canceled"},
		{name: "fulfilled", input: "Fulfilled"},
		{name: "unknown", input: "Shipped", errIs: order.ErrInvalidState},
		{name: "lowercase is not a state", input: "waiting", errIs: order.ErrInvalidState},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st, err := order.NewState(c.input)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.input, string(st))
		})
	}
}
