package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/alerting"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
)

func CreateAlert(service alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var alert *domain.TradingAlert
		if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		alert.UserID = userClaims.UserID

		alert, err := service.Create(alert)
		if err != nil {
			handleAlertError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, alert)
	}
}

func UpdateAlert(service alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var alert *domain.TradingAlert
		if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		alert.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Update(userClaims.UserID, alert); err != nil {
			handleAlertError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func DeleteAlert(service alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(userClaims.UserID, id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error deleting alert", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetAlert(service alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		alert, err := service.Get(userClaims.UserID, id)
		if err != nil {
			handleAlertError(w, err)
			return
		}
		if alert == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Alert not found", nil)
			return
		}

		respondJSON(w, http.StatusOK, alert)
	}
}

// ListAlerts returns the user's alerts, optionally filtered by status.
func ListAlerts(service alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		status := domain.AlertStatus(r.URL.Query().Get("status"))

		alerts, err := service.List(userClaims.UserID, status)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing alerts", nil)
			return
		}

		respondJSON(w, http.StatusOK, alerts)
	}
}

func TriggerAlert(service alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		alert, err := service.Trigger(userClaims.UserID, id)
		if err != nil {
			handleAlertError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, alert)
	}
}

func DismissAlert(service alerting.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		alert, err := service.Dismiss(userClaims.UserID, id)
		if err != nil {
			handleAlertError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, alert)
	}
}

func handleAlertError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, alerting.ErrAlertNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, alerting.ErrSymbolRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, alerting.ErrInvalidAction),
		errors.Is(err, alerting.ErrInvalidPrice),
		errors.Is(err, alerting.ErrInvalidExpiryDate),
		errors.Is(err, alerting.ErrAlertNotOpen):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing alert", nil)
	}
}
