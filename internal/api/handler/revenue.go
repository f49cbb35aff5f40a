package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/revenue"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
	"github.com/Kingcorpe/practice-manager-api/pkg/log"
	"github.com/Kingcorpe/practice-manager-api/pkg/utils"
)

// CommissionPreviewRequest asks for the commission a policy would pay
// without persisting anything.
type CommissionPreviewRequest struct {
	PolicyType     domain.PolicyType `json:"policy_type"`
	MonthlyPremium decimal.Decimal   `json:"monthly_premium"`
}

type CommissionPreviewResponse struct {
	PolicyType     domain.PolicyType `json:"policy_type"`
	MonthlyPremium decimal.Decimal   `json:"monthly_premium"`
	AnnualPremium  decimal.Decimal   `json:"annual_premium"`
	Commission     decimal.Decimal   `json:"commission"`
	Computed       bool              `json:"computed"`
}

func CreateRevenueEntry(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var entry *domain.RevenueEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		entry.UserID = userClaims.UserID

		entry, err := service.CreateEntry(entry)
		if err != nil {
			handleRevenueError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, entry)
	}
}

func UpdateRevenueEntry(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var req domain.UpdateRevenueEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.UpdateEntry(userClaims.UserID, &req)
		if err != nil {
			handleRevenueError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}

func DeleteRevenueEntry(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteEntry(userClaims.UserID, id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error deleting revenue entry", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetRevenueEntry(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.GetEntry(userClaims.UserID, id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching revenue entry", nil)
			return
		}
		if entry == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Revenue entry not found", nil)
			return
		}

		respondJSON(w, http.StatusOK, entry)
	}
}

func ListRevenueEntries(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		entries, err := service.ListEntries(userClaims.UserID, revenueFilterFromQuery(r))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing revenue entries", nil)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// GetRevenueSummary aggregates entries by status and month, optionally
// filtered by the same query parameters as the listing.
func GetRevenueSummary(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		logger := log.ForContext(r.Context())

		summary, err := service.Summary(userClaims.UserID, revenueFilterFromQuery(r))
		if err != nil {
			logger.WithError(err).Error("error building revenue summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error building revenue summary", nil)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// GetYearToDate returns received/pending/planned totals for the calendar
// year. Defaults to the current year.
func GetYearToDate(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		year := time.Now().Year()
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid year", nil)
				return
			}
			year = parsed
		}

		totals, err := service.YearToDateTotals(userClaims.UserID, year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error computing year-to-date totals", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"year":   year,
			"totals": totals,
		})
	}
}

// GetPacingReport returns the live monthly and yearly pacing for a metric.
// Defaults to the commission metric.
func GetPacingReport(service revenue.RevenueService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		metric := domain.GoalMetric(r.URL.Query().Get("metric"))
		if metric == "" {
			metric = domain.MetricCommission
		}

		asOf := time.Now()
		if dateStr := r.URL.Query().Get("as_of"); dateStr != "" {
			parsed, err := utils.ParseDate(dateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid as_of date, expected YYYY-MM-DD", nil)
				return
			}
			asOf = *parsed
		}

		report, err := service.PacingReport(userClaims.UserID, metric, asOf)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("error building pacing report")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error building pacing report", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// PreviewCommission runs the commission calculator without storing an
// entry, so the frontend can show the payout while the user types.
func PreviewCommission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CommissionPreviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}

		annual := req.MonthlyPremium.Mul(decimal.NewFromInt(12))

		respondJSON(w, http.StatusOK, CommissionPreviewResponse{
			PolicyType:     req.PolicyType,
			MonthlyPremium: req.MonthlyPremium,
			AnnualPremium:  annual,
			Commission:     revenue.ComputeCommission(req.PolicyType, req.MonthlyPremium),
			Computed:       revenue.IsComputedPolicy(req.PolicyType),
		})
	}
}

func revenueFilterFromQuery(r *http.Request) repository.RevenueFilter {
	q := r.URL.Query()
	return repository.RevenueFilter{
		Domain:    domain.RevenueDomain(q.Get("domain")),
		Status:    domain.RevenueStatus(q.Get("status")),
		EntryType: domain.InvestmentEntryType(q.Get("entry_type")),
		ClientID:  q.Get("client_id"),
		FromDate:  q.Get("from"),
		ToDate:    q.Get("to"),
	}
}

func handleRevenueError(w http.ResponseWriter, err error) {
	var revErr *revenue.RevenueError
	if errors.As(err, &revErr) {
		switch {
		case errors.Is(err, revenue.ErrEntryNotFound):
			apiErrors.WriteError(w, apiErrors.ErrNotFound, revErr.Error(), nil)
		case errors.Is(err, revenue.ErrMissingID), errors.Is(err, revenue.ErrMissingDate):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, revErr.Error(), nil)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, revErr.Error(), nil)
		}
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing revenue entry", nil)
}
