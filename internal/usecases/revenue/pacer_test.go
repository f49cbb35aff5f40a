package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPace(t *testing.T) {
	tests := []struct {
		name            string
		received        string
		goal            string
		daysRemaining   int
		wantProgressPct string
		wantRemaining   string
		wantDailyTarget string
	}{
		{
			name:            "halfway through the goal",
			received:        "5000",
			goal:            "10000",
			daysRemaining:   10,
			wantProgressPct: "50",
			wantRemaining:   "5000",
			wantDailyTarget: "500",
		},
		{
			name:            "overshoot clamps progress and floors remaining",
			received:        "1500",
			goal:            "1000",
			daysRemaining:   5,
			wantProgressPct: "100",
			wantRemaining:   "0",
			wantDailyTarget: "0",
		},
		{
			name:            "exactly on goal",
			received:        "1000",
			goal:            "1000",
			daysRemaining:   3,
			wantProgressPct: "100",
			wantRemaining:   "0",
			wantDailyTarget: "0",
		},
		{
			name:            "zero goal yields zeros",
			received:        "5000",
			goal:            "0",
			daysRemaining:   10,
			wantProgressPct: "0",
			wantRemaining:   "0",
			wantDailyTarget: "0",
		},
		{
			name:            "negative goal treated as unset",
			received:        "5000",
			goal:            "-100",
			daysRemaining:   10,
			wantProgressPct: "0",
			wantRemaining:   "0",
			wantDailyTarget: "0",
		},
		{
			name:            "no days remaining leaves daily target zero",
			received:        "200",
			goal:            "1000",
			daysRemaining:   0,
			wantProgressPct: "20",
			wantRemaining:   "800",
			wantDailyTarget: "0",
		},
		{
			name:            "daily target rounds to cents",
			received:        "0",
			goal:            "1000",
			daysRemaining:   3,
			wantProgressPct: "0",
			wantRemaining:   "1000",
			wantDailyTarget: "333.33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pacing := Pace(
				decimal.RequireFromString(tt.received),
				decimal.RequireFromString(tt.goal),
				tt.daysRemaining,
			)

			assert.True(t, decimal.RequireFromString(tt.wantProgressPct).Equal(pacing.ProgressPct),
				"progress: expected %s, got %s", tt.wantProgressPct, pacing.ProgressPct.String())
			assert.True(t, decimal.RequireFromString(tt.wantRemaining).Equal(pacing.Remaining),
				"remaining: expected %s, got %s", tt.wantRemaining, pacing.Remaining.String())
			assert.True(t, decimal.RequireFromString(tt.wantDailyTarget).Equal(pacing.DailyTarget),
				"daily target: expected %s, got %s", tt.wantDailyTarget, pacing.DailyTarget.String())
			assert.Equal(t, tt.daysRemaining, pacing.DaysRemaining)
		})
	}
}

func TestPaceProgressNeverExceedsHundred(t *testing.T) {
	received := decimal.RequireFromString("999999999")
	goal := decimal.RequireFromString("0.01")

	pacing := Pace(received, goal, 1)

	assert.True(t, pacing.ProgressPct.Equal(decimal.NewFromInt(100)))
	assert.True(t, pacing.Remaining.IsZero())
}
