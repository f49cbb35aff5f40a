package revenue

import (
	"github.com/shopspring/decimal"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

// Commission formulas for the structured insurance products. All other
// policy types are manual entry: the advisor keys the commission directly
// and the calculator is never consulted.

var commissionRates = map[domain.PolicyType]decimal.Decimal{
	domain.PolicyT10:       decimal.RequireFromString("0.40"),
	domain.PolicyT20:       decimal.RequireFromString("0.45"),
	domain.PolicyLayeredWL: decimal.RequireFromString("0.55"),
}

// bonusMultiplier applies uniformly to the three structured products,
// giving a final multiplier of 2.85 on the base commission.
var bonusMultiplier = decimal.RequireFromString("1.85")

var (
	twelve = decimal.NewFromInt(12)
	one    = decimal.NewFromInt(1)
)

// IsComputedPolicy reports whether the policy type has a commission
// formula.
func IsComputedPolicy(policyType domain.PolicyType) bool {
	_, ok := commissionRates[policyType]
	return ok
}

// ComputeCommission maps (policy type, monthly premium) to the annualized
// commission amount:
//
//	annualPremium  = monthlyPremium * 12
//	baseCommission = annualPremium * baseRate(policyType)
//	total          = baseCommission * (1 + bonusMultiplier)
//
// Unsupported policy types and non-positive premiums yield zero rather
// than an error; empty form fields degrade silently. The result is rounded
// half-up to cents at the final step only.
func ComputeCommission(policyType domain.PolicyType, monthlyPremium decimal.Decimal) decimal.Decimal {
	rate, ok := commissionRates[policyType]
	if !ok || monthlyPremium.Sign() <= 0 {
		return decimal.Zero
	}

	annualPremium := monthlyPremium.Mul(twelve)
	baseCommission := annualPremium.Mul(rate)
	total := baseCommission.Mul(one.Add(bonusMultiplier))

	return total.Round(2)
}

// RequiredMonthlyPremium inverts ComputeCommission: the monthly premium of
// the given product that must be sold per business day to earn dailyTarget
// in commission. Zero when the target is non-positive or the policy type
// has no formula. Callers that surface guidance to the advisor use T10,
// matching the frontend's "sell this much T10 premium per business day"
// figure.
func RequiredMonthlyPremium(dailyTarget decimal.Decimal, policyType domain.PolicyType) decimal.Decimal {
	rate, ok := commissionRates[policyType]
	if !ok || dailyTarget.Sign() <= 0 {
		return decimal.Zero
	}

	divisor := twelve.Mul(rate).Mul(one.Add(bonusMultiplier))

	return dailyTarget.Div(divisor).Round(2)
}
