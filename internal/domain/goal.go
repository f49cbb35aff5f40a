package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalPeriod is the horizon a goal is paced against.
type GoalPeriod string

const (
	PeriodMonthly GoalPeriod = "monthly"
	PeriodYearly  GoalPeriod = "yearly"
)

// GoalMetric names what the goal measures. The set is open ended; pages
// introduce new metrics without a schema change.
type GoalMetric string

const (
	MetricCommission GoalMetric = "commission"
	MetricDividend   GoalMetric = "dividend"
	MetricAUM        GoalMetric = "aum"
)

// Goal is a user-set target amount, stored as a key-value pair per user.
// Keys look like "monthly_commission_goal". No expiry, no versioning; a
// cleared goal is simply removed.
type Goal struct {
	Key       string          `json:"key"`
	UserID    int             `json:"user_id"`
	Period    GoalPeriod      `json:"period"`
	Metric    GoalMetric      `json:"metric"`
	Amount    decimal.Decimal `json:"amount"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GoalKey builds the canonical storage key for a period/metric pair.
func GoalKey(period GoalPeriod, metric GoalMetric) string {
	return string(period) + "_" + string(metric) + "_goal"
}
