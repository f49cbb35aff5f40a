package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/goals"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
)

func GetGoal(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		key := httprouter.ParamsFromContext(r.Context()).ByName("key")

		goal, err := service.Get(userClaims.UserID, key)
		if err != nil {
			handleGoalError(w, err)
			return
		}
		if goal == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Goal not set", nil)
			return
		}

		respondJSON(w, http.StatusOK, goal)
	}
}

func ListGoals(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		list, err := service.List(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing goals", nil)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}

// SetGoal upserts the goal stored under the key in the URL.
func SetGoal(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var goal *domain.Goal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		goal.UserID = userClaims.UserID
		goal.Key = httprouter.ParamsFromContext(r.Context()).ByName("key")

		goal, err := service.Set(goal)
		if err != nil {
			handleGoalError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, goal)
	}
}

func ClearGoal(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		key := httprouter.ParamsFromContext(r.Context()).ByName("key")

		if err := service.Clear(userClaims.UserID, key); err != nil {
			handleGoalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGoalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, goals.ErrMissingKey):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, goals.ErrInvalidPeriod), errors.Is(err, goals.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing goal", nil)
	}
}
