package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCAD(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "13680", expected: "$13,680.00"},
		{amount: "0", expected: "$0.00"},
		{amount: "0.5", expected: "$0.50"},
		{amount: "1234567.89", expected: "$1,234,567.89"},
		{amount: "99.99", expected: "$99.99"},
	}

	for _, tt := range tests {
		result := FormatCAD(decimal.RequireFromString(tt.amount))
		assert.Equal(t, tt.expected, result)
	}
}

func TestFromString(t *testing.T) {
	assert.True(t, FromString("1234.56").Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, FromString("").IsZero())
	assert.True(t, FromString("not a number").IsZero())
	assert.True(t, FromString("-50").Equal(decimal.RequireFromString("-50")))
}
