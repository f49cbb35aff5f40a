package revenue

import (
	"github.com/shopspring/decimal"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

var hundredPct = decimal.NewFromInt(100)

// Pace derives progress, remaining amount, and the per-business-day target
// for one goal period. Every division is guarded: a zero goal or zero days
// remaining yields zeros rather than infinities, which covers both the
// last business day of a period and a period already over.
//
// Progress is clamped at 100%; overshoot is not reported. Remaining never
// goes negative. Monthly and yearly pacing are computed as independent
// instances and never offset each other.
func Pace(received, goal decimal.Decimal, businessDaysRemaining int) domain.Pacing {
	pacing := domain.Pacing{
		GoalAmount:    goal,
		Received:      received,
		ProgressPct:   decimal.Zero,
		Remaining:     decimal.Zero,
		DaysRemaining: businessDaysRemaining,
		DailyTarget:   decimal.Zero,
	}

	if goal.Sign() <= 0 {
		return pacing
	}

	progress := received.Div(goal).Mul(hundredPct).Round(2)
	if progress.GreaterThan(hundredPct) {
		progress = hundredPct
	}
	pacing.ProgressPct = progress

	remaining := goal.Sub(received)
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}
	pacing.Remaining = remaining

	if businessDaysRemaining > 0 {
		pacing.DailyTarget = remaining.DivRound(decimal.NewFromInt(int64(businessDaysRemaining)), 2)
	}

	return pacing
}
