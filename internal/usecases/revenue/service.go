package revenue

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/pkg/log"
	"github.com/Kingcorpe/practice-manager-api/pkg/utils"
)

// RevenueService is the API surface for revenue entries, summaries, and
// goal pacing.
type RevenueService interface {
	CreateEntry(entry *domain.RevenueEntry) (*domain.RevenueEntry, error)
	UpdateEntry(userID int, req *domain.UpdateRevenueEntryRequest) (*domain.RevenueEntry, error)
	DeleteEntry(userID int, id string) error
	GetEntry(userID int, id string) (*domain.RevenueEntry, error)
	ListEntries(userID int, filter repository.RevenueFilter) ([]*domain.RevenueEntry, error)
	Summary(userID int, filter repository.RevenueFilter) (*domain.RevenueSummary, error)
	YearToDateTotals(userID int, year int) (map[domain.RevenueStatus]decimal.Decimal, error)
	PacingReport(userID int, metric domain.GoalMetric, today time.Time) (*domain.PacingReport, error)
}

type Service struct {
	entryRepo repository.RevenueEntryRepository
	goalRepo  repository.GoalRepository
}

func NewService(
	entryRepo repository.RevenueEntryRepository,
	goalRepo repository.GoalRepository,
) RevenueService {
	return &Service{
		entryRepo: entryRepo,
		goalRepo:  goalRepo,
	}
}

func (s *Service) CreateEntry(entry *domain.RevenueEntry) (*domain.RevenueEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	entry.ID = id

	if entry.Status == "" {
		entry.Status = domain.StatusPlanned
	}

	// Structured products are always computed from premium; every other
	// policy type keeps the user's raw amount.
	if IsComputedPolicy(entry.PolicyType) {
		entry.Amount = ComputeCommission(entry.PolicyType, entry.MonthlyPremium)
	}

	if err := s.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) UpdateEntry(userID int, req *domain.UpdateRevenueEntryRequest) (*domain.RevenueEntry, error) {
	if req.ID == "" {
		return nil, NewRevenueError(ErrMissingID, "entry id is required")
	}

	entry, err := s.entryRepo.GetByID(userID, req.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, NewRevenueError(ErrEntryNotFound, "revenue entry not found")
	}

	if req.ClientID != nil {
		entry.ClientID = req.ClientID
	}

	if req.Date != nil {
		entry.Date = *req.Date
	}

	if req.Amount != nil {
		entry.Amount = *req.Amount
	}

	if req.Status != nil {
		// Any status may move to any other; the lifecycle is advisory
		entry.Status = *req.Status
	}

	if req.PolicyType != nil {
		entry.PolicyType = *req.PolicyType
	}

	if req.EntryType != nil {
		entry.EntryType = *req.EntryType
	}

	if req.MonthlyPremium != nil {
		entry.MonthlyPremium = *req.MonthlyPremium
	}

	if req.AccountType != nil {
		entry.AccountType = *req.AccountType
	}

	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	if IsComputedPolicy(entry.PolicyType) {
		entry.Amount = ComputeCommission(entry.PolicyType, entry.MonthlyPremium)
	}

	if err := s.entryRepo.Update(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) DeleteEntry(userID int, id string) error {
	return s.entryRepo.Delete(userID, id)
}

func (s *Service) GetEntry(userID int, id string) (*domain.RevenueEntry, error) {
	return s.entryRepo.GetByID(userID, id)
}

func (s *Service) ListEntries(userID int, filter repository.RevenueFilter) ([]*domain.RevenueEntry, error) {
	return s.entryRepo.ListByUser(userID, filter)
}

func (s *Service) Summary(userID int, filter repository.RevenueFilter) (*domain.RevenueSummary, error) {
	entries, err := s.entryRepo.ListByUser(userID, filter)
	if err != nil {
		return nil, err
	}

	return Aggregate(entries), nil
}

func (s *Service) YearToDateTotals(userID int, year int) (map[domain.RevenueStatus]decimal.Decimal, error) {
	entries, err := s.entryRepo.ListByUser(userID, repository.RevenueFilter{})
	if err != nil {
		return nil, err
	}

	return YearToDate(entries, year), nil
}

// PacingReport combines received totals, stored goals, and business-day
// counts into the monthly and yearly pacing views. The two views are
// computed independently; monthly overshoot never reduces the yearly
// target.
func (s *Service) PacingReport(userID int, metric domain.GoalMetric, today time.Time) (*domain.PacingReport, error) {
	day := NormalizeToMidnight(today)

	entries, err := s.entryRepo.ListByUser(userID, metricFilter(metric))
	if err != nil {
		return nil, err
	}

	monthKey := utils.MonthKey(day)
	monthReceived := decimal.Zero
	yearReceived := decimal.Zero

	for _, entry := range entries {
		if entry.Status != domain.StatusReceived {
			continue
		}

		date, err := time.Parse(time.DateOnly, entry.Date)
		if err != nil {
			log.L.WithFields(log.Fields{
				"entry_id": entry.ID,
				"date":     entry.Date,
			}).Warn("revenue-pacing: skipping entry with malformed date")
			continue
		}

		if date.Year() == day.Year() {
			yearReceived = yearReceived.Add(entry.Amount)

			if utils.MonthKey(date) == monthKey {
				monthReceived = monthReceived.Add(entry.Amount)
			}
		}
	}

	monthlyGoal := decimal.Zero
	if goal, err := s.goalRepo.Get(userID, domain.GoalKey(domain.PeriodMonthly, metric)); err != nil {
		return nil, err
	} else if goal != nil {
		monthlyGoal = goal.Amount
	}

	yearlyGoal := decimal.Zero
	if goal, err := s.goalRepo.Get(userID, domain.GoalKey(domain.PeriodYearly, metric)); err != nil {
		return nil, err
	} else if goal != nil {
		yearlyGoal = goal.Amount
	}

	monthly := Pace(monthReceived, monthlyGoal, BusinessDaysRemainingInMonth(day))
	yearly := Pace(yearReceived, yearlyGoal, BusinessDaysRemainingInYear(day))

	return &domain.PacingReport{
		Monthly:            monthly,
		Yearly:             yearly,
		RequiredT10Premium: RequiredMonthlyPremium(monthly.DailyTarget, domain.PolicyT10),
		AsOf:               day.Format(time.DateOnly),
	}, nil
}

// metricFilter scopes entries to the revenue that counts toward a metric:
// commission tracks insurance business, dividend and AUM track the
// matching investment sub-types.
func metricFilter(metric domain.GoalMetric) repository.RevenueFilter {
	switch metric {
	case domain.MetricDividend:
		return repository.RevenueFilter{Domain: domain.RevenueInvestment, EntryType: domain.EntryDividend}
	case domain.MetricAUM:
		return repository.RevenueFilter{Domain: domain.RevenueInvestment, EntryType: domain.EntryAUM}
	default:
		return repository.RevenueFilter{Domain: domain.RevenueInsurance}
	}
}

func validateEntry(entry *domain.RevenueEntry) error {
	if entry.Date == "" {
		return NewRevenueError(ErrMissingDate, "entry date is required")
	}

	if _, err := time.Parse(time.DateOnly, entry.Date); err != nil {
		return NewRevenueError(ErrInvalidDate, "entry date must be YYYY-MM-DD")
	}

	if entry.Amount.Sign() < 0 {
		return NewRevenueError(ErrNegativeAmount, "entry amount cannot be negative")
	}

	if entry.Domain != domain.RevenueInsurance && entry.Domain != domain.RevenueInvestment {
		return NewRevenueError(ErrInvalidDomain, "entry domain must be insurance or investment")
	}

	return nil
}
