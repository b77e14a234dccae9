//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"gemstore/internal/domain/invoice"
	"gemstore/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name     string
		date     time.Time
		counter  int64
		expected string
	}{
		{
			name:     "single digit counter is zero padded",
			date:     time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
			counter:  1,
			expected: "GEMSTORE-2026-09-01-000001",
		},
		{
			name:     "counter grows within the day",
			date:     time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC),
			counter:  42,
			expected: "GEMSTORE-2026-09-01-000042",
		},
		{
			name:     "six digit counter fills the field",
			date:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			counter:  999999,
			expected: "GEMSTORE-2026-12-31-999999",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, invoice.FormatNumber(c.date, c.counter))
		})
	}
}

func TestNetCents(t *testing.T) {
	cases := []struct {
		name     string
		gross    int64
		expected int64
	}{
		{name: "typical total", gross: 3500, expected: 2835},
		{name: "rounds to nearest cent", gross: 999, expected: 809},
		{name: "zero", gross: 0, expected: 0},
		{name: "single cent rounds up", gross: 1, expected: 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, invoice.NetCents(c.gross))
		})
	}
}

func TestNewInvoice(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "GEMSTORE-2026-09-01-000001", actual.Number())
		assert.Equal(t, b.OrderNumber, actual.OrderNumber())
		assert.Equal(t, int64(3500), actual.TotalCents())
		assert.Equal(t, int64(2835), actual.TotalWithoutTaxCents())
		assert.Equal(t, "19%", actual.Tax())
		assert.Equal(t, "PayPal", actual.Payment())
		assert.Equal(t, actual.IssueDate(), actual.OrderDate())
	})

	t.Run("missing order number is rejected", func(t *testing.T) {
		_, err := builder.NewInvoiceBuilder().WithOrderNumber("").BuildDomain()
		assert.ErrorIs(t, err, invoice.ErrMissingOrderNumber)
	})

	t.Run("empty lines are rejected", func(t *testing.T) {
		b := builder.NewInvoiceBuilder()
		b.Lines = nil
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, invoice.ErrEmptyInvoice)
	})
}
