package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/portfolios"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
)

func CreatePortfolio(service portfolios.PortfolioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var portfolio *domain.ModelPortfolio
		if err := json.NewDecoder(r.Body).Decode(&portfolio); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		portfolio.UserID = userClaims.UserID

		portfolio, err := service.Create(portfolio)
		if err != nil {
			handlePortfolioError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, portfolio)
	}
}

func UpdatePortfolio(service portfolios.PortfolioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var portfolio *domain.ModelPortfolio
		if err := json.NewDecoder(r.Body).Decode(&portfolio); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		portfolio.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Update(userClaims.UserID, portfolio); err != nil {
			handlePortfolioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func DeletePortfolio(service portfolios.PortfolioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(userClaims.UserID, id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error deleting portfolio", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetPortfolio(service portfolios.PortfolioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		portfolio, err := service.Get(userClaims.UserID, id)
		if err != nil {
			handlePortfolioError(w, err)
			return
		}
		if portfolio == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Portfolio not found", nil)
			return
		}

		respondJSON(w, http.StatusOK, portfolio)
	}
}

func ListPortfolios(service portfolios.PortfolioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		list, err := service.List(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing portfolios", nil)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}

func handlePortfolioError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, portfolios.ErrPortfolioNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, portfolios.ErrNameRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, portfolios.ErrInvalidAllocations):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAllocation, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing portfolio", nil)
	}
}
