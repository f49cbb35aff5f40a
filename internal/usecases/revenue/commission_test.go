package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func TestComputeCommission(t *testing.T) {
	tests := []struct {
		name           string
		policyType     domain.PolicyType
		monthlyPremium string
		expected       string
	}{
		{
			name:           "T10 at 1000 monthly",
			policyType:     domain.PolicyT10,
			monthlyPremium: "1000",
			expected:       "13680",
		},
		{
			name:           "T20 at 1000 monthly",
			policyType:     domain.PolicyT20,
			monthlyPremium: "1000",
			expected:       "15390",
		},
		{
			name:           "Layered WL at 1000 monthly",
			policyType:     domain.PolicyLayeredWL,
			monthlyPremium: "1000",
			expected:       "18810",
		},
		{
			name:           "fractional premium rounds at the final step",
			policyType:     domain.PolicyT10,
			monthlyPremium: "123.45",
			expected:       "1688.80",
		},
		{
			name:           "manual policy type yields zero",
			policyType:     domain.PolicyHealthInsurance,
			monthlyPremium: "1000",
			expected:       "0",
		},
		{
			name:           "unknown policy type yields zero",
			policyType:     domain.PolicyType("GIC"),
			monthlyPremium: "1000",
			expected:       "0",
		},
		{
			name:           "zero premium yields zero",
			policyType:     domain.PolicyT10,
			monthlyPremium: "0",
			expected:       "0",
		},
		{
			name:           "negative premium yields zero",
			policyType:     domain.PolicyT20,
			monthlyPremium: "-500",
			expected:       "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			premium := decimal.RequireFromString(tt.monthlyPremium)
			expected := decimal.RequireFromString(tt.expected)

			result := ComputeCommission(tt.policyType, premium)

			assert.True(t, expected.Equal(result),
				"expected %s, got %s", expected.String(), result.String())
		})
	}
}

func TestComputeCommissionNeverNegative(t *testing.T) {
	premiums := []string{"-1000000", "-0.01", "0", "0.01", "57.13", "99999.99"}
	policyTypes := []domain.PolicyType{
		domain.PolicyT10,
		domain.PolicyT20,
		domain.PolicyLayeredWL,
		domain.PolicyLifeInsurance,
		domain.PolicyType(""),
	}

	for _, p := range premiums {
		for _, pt := range policyTypes {
			result := ComputeCommission(pt, decimal.RequireFromString(p))
			assert.False(t, result.IsNegative(),
				"commission for %s at %s must not be negative, got %s", pt, p, result.String())
		}
	}
}

func TestIsComputedPolicy(t *testing.T) {
	assert.True(t, IsComputedPolicy(domain.PolicyT10))
	assert.True(t, IsComputedPolicy(domain.PolicyT20))
	assert.True(t, IsComputedPolicy(domain.PolicyLayeredWL))

	assert.False(t, IsComputedPolicy(domain.PolicyLifeInsurance))
	assert.False(t, IsComputedPolicy(domain.PolicyHealthInsurance))
	assert.False(t, IsComputedPolicy(domain.PolicyDisability))
	assert.False(t, IsComputedPolicy(domain.PolicyCriticalIllness))
	assert.False(t, IsComputedPolicy(domain.PolicyType("")))
}

func TestRequiredMonthlyPremium(t *testing.T) {
	// The solver inverts the commission formula: selling the returned
	// premium earns the daily target back, modulo cent rounding.
	dailyTarget := decimal.RequireFromString("500")

	premium := RequiredMonthlyPremium(dailyTarget, domain.PolicyT10)
	assert.False(t, premium.IsZero())

	earned := ComputeCommission(domain.PolicyT10, premium)
	diff := earned.Sub(dailyTarget).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("0.10")),
		"round trip drifted by %s", diff.String())
}

func TestRequiredMonthlyPremiumGuards(t *testing.T) {
	zero := RequiredMonthlyPremium(decimal.Zero, domain.PolicyT10)
	assert.True(t, zero.IsZero())

	negative := RequiredMonthlyPremium(decimal.RequireFromString("-100"), domain.PolicyT10)
	assert.True(t, negative.IsZero())

	manual := RequiredMonthlyPremium(decimal.RequireFromString("500"), domain.PolicyLifeInsurance)
	assert.True(t, manual.IsZero())
}
