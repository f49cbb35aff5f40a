package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation is one slice of a model portfolio.
type Allocation struct {
	AssetClass string          `json:"asset_class"`
	Symbol     string          `json:"symbol,omitempty"`
	WeightPct  decimal.Decimal `json:"weight_pct"`
}

// ModelPortfolio is a reusable allocation template. Weights must sum to
// exactly 100.
type ModelPortfolio struct {
	ID          string       `json:"id"`
	UserID      int          `json:"user_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	RiskLevel   string       `json:"risk_level,omitempty"`
	Allocations []Allocation `json:"allocations"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// hundred is the required allocation total.
var hundred = decimal.NewFromInt(100)

// ValidateAllocations checks every weight is positive and the total is 100.
func (p *ModelPortfolio) ValidateAllocations() bool {
	if len(p.Allocations) == 0 {
		return false
	}

	total := decimal.Zero
	for _, a := range p.Allocations {
		if a.WeightPct.Sign() <= 0 {
			return false
		}
		total = total.Add(a.WeightPct)
	}

	return total.Equal(hundred)
}
