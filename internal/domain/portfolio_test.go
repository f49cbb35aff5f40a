package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func allocation(assetClass, weight string) Allocation {
	return Allocation{
		AssetClass: assetClass,
		WeightPct:  decimal.RequireFromString(weight),
	}
}

func TestValidateAllocations(t *testing.T) {
	tests := []struct {
		name        string
		allocations []Allocation
		valid       bool
	}{
		{
			name: "weights sum to exactly 100",
			allocations: []Allocation{
				allocation("equity", "60"),
				allocation("fixed_income", "30"),
				allocation("cash", "10"),
			},
			valid: true,
		},
		{
			name: "fractional weights sum to 100",
			allocations: []Allocation{
				allocation("equity", "33.33"),
				allocation("fixed_income", "33.33"),
				allocation("cash", "33.34"),
			},
			valid: true,
		},
		{
			name: "undershoot fails",
			allocations: []Allocation{
				allocation("equity", "60"),
				allocation("fixed_income", "30"),
			},
			valid: false,
		},
		{
			name: "overshoot fails",
			allocations: []Allocation{
				allocation("equity", "60"),
				allocation("fixed_income", "50"),
			},
			valid: false,
		},
		{
			name: "zero weight fails even when the total is 100",
			allocations: []Allocation{
				allocation("equity", "100"),
				allocation("cash", "0"),
			},
			valid: false,
		},
		{
			name: "negative weight fails",
			allocations: []Allocation{
				allocation("equity", "150"),
				allocation("short", "-50"),
			},
			valid: false,
		},
		{
			name:        "empty allocations fail",
			allocations: nil,
			valid:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ModelPortfolio{Name: "Balanced", Allocations: tt.allocations}
			assert.Equal(t, tt.valid, p.ValidateAllocations())
		})
	}
}
