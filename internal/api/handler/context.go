package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
	"github.com/Kingcorpe/practice-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// claimsFromRequest pulls the authenticated user out of the request
// context. A false return means the auth middleware did not run.
func claimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("error encoding response")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error sending response", nil)
	}
}
