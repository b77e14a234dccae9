//go:build unit

package number_test

import (
	"testing"

	"gemstore/internal/domain/number"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "all groups populated", input: 482_019_337_204, expected: "482-019-337-204"},
		{name: "leading zeros preserved per group", input: 100_000_000_001, expected: "100-000-000-001"},
		{name: "maximum 12-digit value", input: 999_999_999_999, expected: "999-999-999-999"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, number.Format(c.input))
		})
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "well formed", input: "482-019-337-204", valid: true},
		{name: "missing dashes", input: "482019337204", valid: false},
		{name: "too few groups", input: "482-019-337", valid: false},
		{name: "letters", input: "482-019-33a-204", valid: false},
		{name: "trailing garbage", input: "482-019-337-204x", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.valid, number.Valid(c.input))
		})
	}
}

func TestNewRandom(t *testing.T) {
	for i := 0; i < 100; i++ {
		num := number.NewRandom()
		assert.True(t, number.Valid(num), "generated number %q must match the sales number format", num)
		assert.NotEqual(t, '0', num[0], "first group must not drop below 100")
	}
}
