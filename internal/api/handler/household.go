package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/clienting"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
)

func CreateHousehold(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var household *domain.Household
		if err := json.NewDecoder(r.Body).Decode(&household); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		household.UserID = userClaims.UserID

		household, err := service.CreateHousehold(household)
		if err != nil {
			handleClientingError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, household)
	}
}

func UpdateHousehold(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var req domain.UpdateHouseholdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.UpdateHousehold(userClaims.UserID, &req); err != nil {
			handleClientingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteHousehold removes the household and every member in it.
func DeleteHousehold(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteHousehold(userClaims.UserID, id); err != nil {
			handleClientingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetHousehold(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		household, err := service.GetHousehold(userClaims.UserID, id)
		if err != nil {
			handleClientingError(w, err)
			return
		}
		if household == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Household not found", nil)
			return
		}

		respondJSON(w, http.StatusOK, household)
	}
}

func ListHouseholds(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		households, err := service.ListHouseholds(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing households", nil)
			return
		}

		respondJSON(w, http.StatusOK, households)
	}
}

func AddHouseholdMember(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		householdID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var client *domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}

		client, err := service.AddMember(userClaims.UserID, householdID, client)
		if err != nil {
			handleClientingError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, client)
	}
}

func UpdateHouseholdMember(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var req domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("client_id")

		if err := service.UpdateMember(userClaims.UserID, &req); err != nil {
			handleClientingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func RemoveHouseholdMember(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		householdID := params.ByName("id")
		clientID := params.ByName("client_id")

		if err := service.RemoveMember(userClaims.UserID, householdID, clientID); err != nil {
			handleClientingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleClientingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, clienting.ErrHouseholdNotFound), errors.Is(err, clienting.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, clienting.ErrNameRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing household", nil)
	}
}
