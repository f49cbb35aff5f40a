package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/documents"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
)

func CreateDocument(service documents.DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var document *domain.Document
		if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		document.UserID = userClaims.UserID

		document, err := service.Create(document)
		if err != nil {
			handleDocumentError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, document)
	}
}

func UpdateDocument(service documents.DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		var document *domain.Document
		if err := json.NewDecoder(r.Body).Decode(&document); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Error decoding request", nil)
			return
		}
		document.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Update(userClaims.UserID, document); err != nil {
			handleDocumentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

func DeleteDocument(service documents.DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(userClaims.UserID, id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error deleting document", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetDocument(service documents.DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		document, err := service.Get(userClaims.UserID, id)
		if err != nil {
			handleDocumentError(w, err)
			return
		}
		if document == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Document not found", nil)
			return
		}

		respondJSON(w, http.StatusOK, document)
	}
}

// ListDocuments returns document metadata, optionally filtered by the
// category query parameter.
func ListDocuments(service documents.DocumentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authorized", nil)
			return
		}

		list, err := service.List(userClaims.UserID, r.URL.Query().Get("category"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error listing documents", nil)
			return
		}

		respondJSON(w, http.StatusOK, list)
	}
}

func handleDocumentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, documents.ErrDocumentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, documents.ErrTitleRequired), errors.Is(err, documents.ErrFileNameRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, documents.ErrNegativeSizeBytes):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error processing document", nil)
	}
}
