//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"gemstore/internal/domain/checkout"
	"gemstore/internal/domain/item"
	"gemstore/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewCheckoutBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.Number, actual.Number())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.False(t, actual.Settled())
		assert.False(t, actual.IntentCreated())
	})

	t.Run("total charges each unit price once regardless of quantity", func(t *testing.T) {
		lines := []item.Line{
			{ItemNumber: "GEM-0001", Name: "Amethyst Ring", UnitPriceCents: 2500, Quantity: 3},
			{ItemNumber: "GEM-0002", Name: "Opal Pendant", UnitPriceCents: 1000, Quantity: 5},
		}
		actual, err := builder.NewCheckoutBuilder().WithLines(lines).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(3500), actual.TotalCents())
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := builder.NewCheckoutBuilder().WithLines(nil).BuildDomain()
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		lines := []item.Line{
			{ItemNumber: "GEM-0001", Name: "Amethyst Ring", UnitPriceCents: 2500, Quantity: 0},
		}
		_, err := builder.NewCheckoutBuilder().WithLines(lines).BuildDomain()
		assert.ErrorIs(t, err, item.ErrInvalidQuantity)
	})

	t.Run("lines are frozen against caller mutation", func(t *testing.T) {
		lines := []item.Line{
			{ItemNumber: "GEM-0001", Name: "Amethyst Ring", UnitPriceCents: 2500, Quantity: 1},
		}
		actual, err := builder.NewCheckoutBuilder().WithLines(lines).BuildDomain()
		require.NoError(t, err)

		lines[0].UnitPriceCents = 99
		assert.Equal(t, int64(2500), actual.Lines()[0].UnitPriceCents)
	})
}

func TestSnapshotExpiredAt(t *testing.T) {
	createdAt := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	snap := builder.NewCheckoutBuilder().WithCreatedAt(createdAt).BuildSnapshot()
	retention := 30 * time.Minute

	cases := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{name: "fresh", now: createdAt.Add(time.Minute), expired: false},
		{name: "exactly at retention boundary", now: createdAt.Add(retention), expired: false},
		{name: "past retention", now: createdAt.Add(retention + time.Second), expired: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expired, snap.ExpiredAt(c.now, retention))
		})
	}
}
