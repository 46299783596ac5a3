package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/recipe-api/internal/logger"
	"github.com/sbilibin2017/recipe-api/internal/middlewares"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/validation"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// ValidationErrorResponse represents a request rejected by field validation
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Error message
	// default: validation failed
	Error string `json:"error"`

	// Messages per failing field
	Fields map[string][]string `json:"fields"`
}

const (
	msgInvalidBody   = "Invalid request body"
	msgUnauthorized  = "Unauthorized"
	msgNotFound      = "Not found."
	msgInternalError = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeValidation(w http.ResponseWriter, fields validation.Errors) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: fields})
}

// writeServiceError maps a service failure to its response: field errors
// to 400, a missing or foreign object to 404, anything else to 500.
func writeServiceError(w http.ResponseWriter, err error, msg string, keysAndValues ...any) {
	if fields, ok := validation.AsErrors(err); ok {
		writeValidation(w, fields)
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	logger.Log.Errorw(msg, append(keysAndValues, "error", err)...)
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// currentUser returns the authenticated user or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.UserDB, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return nil, false
	}
	return user, true
}

// recipeID parses the {id} path parameter. Malformed ids answer 404 like
// ids of recipes the caller does not own.
func recipeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}
