package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueDomain separates insurance business from investment business.
type RevenueDomain string

const (
	RevenueInsurance  RevenueDomain = "insurance"
	RevenueInvestment RevenueDomain = "investment"
)

// RevenueStatus is the entry lifecycle. Transitions are user driven and
// unconstrained: any status may move to any other.
type RevenueStatus string

const (
	StatusPlanned  RevenueStatus = "planned"
	StatusPending  RevenueStatus = "pending"
	StatusReceived RevenueStatus = "received"
)

// PolicyType selects which commission formula applies, if any. The three
// structured products are auto computed; everything else is manual entry.
type PolicyType string

const (
	PolicyT10             PolicyType = "T10"
	PolicyT20             PolicyType = "T20"
	PolicyLayeredWL       PolicyType = "Layered WL"
	PolicyLifeInsurance   PolicyType = "Life Insurance"
	PolicyHealthInsurance PolicyType = "Health Insurance"
	PolicyDisability      PolicyType = "Disability"
	PolicyCriticalIllness PolicyType = "Critical Illness"
)

// InvestmentEntryType is the sub-type for investment revenue.
type InvestmentEntryType string

const (
	EntryDividend InvestmentEntryType = "dividend"
	EntryAUM      InvestmentEntryType = "aum"
	EntryTrailer  InvestmentEntryType = "trailer"
)

// RevenueEntry is a single revenue event. Date is the economic event date
// in ISO "YYYY-MM-DD" form, not the row creation time. Amount is kept as an
// exact decimal from intake to display.
type RevenueEntry struct {
	ID             string              `json:"id"`
	UserID         int                 `json:"user_id"`
	ClientID       *string             `json:"client_id"`
	Domain         RevenueDomain       `json:"domain"`
	Date           string              `json:"date"`
	Amount         decimal.Decimal     `json:"amount"`
	Status         RevenueStatus       `json:"status"`
	PolicyType     PolicyType          `json:"policy_type,omitempty"`
	EntryType      InvestmentEntryType `json:"entry_type,omitempty"`
	MonthlyPremium decimal.Decimal     `json:"monthly_premium"`
	AccountType    string              `json:"account_type,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// UpdateRevenueEntryRequest carries a partial update; nil fields are left
// unchanged.
type UpdateRevenueEntryRequest struct {
	ID             string               `json:"id"`
	ClientID       *string              `json:"client_id"`
	Date           *string              `json:"date"`
	Amount         *decimal.Decimal     `json:"amount"`
	Status         *RevenueStatus       `json:"status"`
	PolicyType     *PolicyType          `json:"policy_type"`
	EntryType      *InvestmentEntryType `json:"entry_type"`
	MonthlyPremium *decimal.Decimal     `json:"monthly_premium"`
	AccountType    *string              `json:"account_type"`
	Notes          *string              `json:"notes"`
}

// MonthBreakdown is one "YYYY-MM" bucket of the revenue summary.
type MonthBreakdown struct {
	MonthKey string                                  `json:"month"`
	ByStatus map[RevenueStatus]decimal.Decimal      `json:"by_status"`
	ByType   map[InvestmentEntryType]decimal.Decimal `json:"by_type,omitempty"`
}

// RevenueSummary is the aggregate view of a set of entries.
type RevenueSummary struct {
	ByStatus map[RevenueStatus]decimal.Decimal `json:"by_status"`
	Months   []MonthBreakdown                  `json:"months"`
}

// Pacing is the goal-progress figure set for one period.
type Pacing struct {
	GoalAmount    decimal.Decimal `json:"goal_amount"`
	Received      decimal.Decimal `json:"received"`
	ProgressPct   decimal.Decimal `json:"progress_pct"`
	Remaining     decimal.Decimal `json:"remaining"`
	DaysRemaining int             `json:"business_days_remaining"`
	DailyTarget   decimal.Decimal `json:"daily_target"`
}

// PacingReport pairs the independent monthly and yearly pacing views and
// the convenience T10 premium guidance.
type PacingReport struct {
	Monthly            Pacing          `json:"monthly"`
	Yearly             Pacing          `json:"yearly"`
	RequiredT10Premium decimal.Decimal `json:"required_t10_monthly_premium"`
	AsOf               string          `json:"as_of"`
}

// PacingSnapshot is the nightly persisted copy of a user's pacing report.
type PacingSnapshot struct {
	ID        int64      `json:"id"`
	UserID    int        `json:"user_id"`
	Date      string     `json:"date"`
	Metric    GoalMetric `json:"metric"`
	Monthly   Pacing     `json:"monthly"`
	Yearly    Pacing     `json:"yearly"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
