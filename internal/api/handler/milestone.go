package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/milestones"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
)

func CreateMilestone(service milestones.MilestoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var milestone *domain.Milestone
		if err := json.NewDecoder(r.Body).Decode(&milestone); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		milestone.UserID = userClaims.UserID

		milestone, err := service.Create(milestone)
		if err != nil {
			handleMilestoneError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, milestone)
	}
}

func UpdateMilestone(service milestones.MilestoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var milestone *domain.Milestone
		if err := json.NewDecoder(r.Body).Decode(&milestone); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		milestone.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Update(userClaims.UserID, milestone); err != nil {
			handleMilestoneError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func DeleteMilestone(service milestones.MilestoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(userClaims.UserID, id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error deleting milestone", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListMilestones returns the user's milestones, optionally scoped to a
// client via the client_id query parameter.
func ListMilestones(service milestones.MilestoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var (
			list []*domain.Milestone
			err  error
		)

		if clientID := r.URL.Query().Get("client_id"); clientID != "" {
			list, err = service.ListByClient(userClaims.UserID, clientID)
		} else {
			list, err = service.List(userClaims.UserID)
		}
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing milestones", nil)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}

func CompleteMilestone(service milestones.MilestoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		milestone, err := service.Complete(userClaims.UserID, id)
		if err != nil {
			handleMilestoneError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, milestone)
	}
}

func handleMilestoneError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, milestones.ErrMilestoneNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, milestones.ErrTitleRequired), errors.Is(err, milestones.ErrClientRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, milestones.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing milestone", nil)
	}
}
