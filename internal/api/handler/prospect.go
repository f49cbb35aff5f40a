package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/prospecting"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
)

type MoveStageRequest struct {
	Stage domain.ProspectStage `json:"stage"`
}

func CreateProspect(service prospecting.ProspectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var prospect *domain.Prospect
		if err := json.NewDecoder(r.Body).Decode(&prospect); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		prospect.UserID = userClaims.UserID

		prospect, err := service.Create(prospect)
		if err != nil {
			handleProspectError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, prospect)
	}
}

func UpdateProspect(service prospecting.ProspectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var prospect *domain.Prospect
		if err := json.NewDecoder(r.Body).Decode(&prospect); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		prospect.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Update(userClaims.UserID, prospect); err != nil {
			handleProspectError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func DeleteProspect(service prospecting.ProspectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(userClaims.UserID, id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error deleting prospect", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetProspect(service prospecting.ProspectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		prospect, err := service.Get(userClaims.UserID, id)
		if err != nil {
			handleProspectError(w, err)
			return
		}
		if prospect == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Prospect not found", nil)
			return
		}

		respondJSON(w, http.StatusOK, prospect)
	}
}

func ListProspects(service prospecting.ProspectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		prospects, err := service.List(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing prospects", nil)
			return
		}

		respondJSON(w, http.StatusOK, prospects)
	}
}

// MoveProspectStage moves a prospect through the funnel, clearing the
// stale flag and restamping the stage clock.
func MoveProspectStage(service prospecting.ProspectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req MoveStageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}

		prospect, err := service.MoveStage(userClaims.UserID, id, req.Stage)
		if err != nil {
			handleProspectError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, prospect)
	}
}

func GetFunnelSummary(service prospecting.ProspectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		summary, err := service.FunnelSummary(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error building funnel summary", nil)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

func handleProspectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, prospecting.ErrProspectNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, prospecting.ErrInvalidStage), errors.Is(err, prospecting.ErrTerminalStage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidStage, err.Error(), nil)
	case errors.Is(err, prospecting.ErrNameRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing prospect", nil)
	}
}
