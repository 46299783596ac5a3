package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/validation"
)

// AttributeLister defines the interface that the service must implement.
type AttributeLister interface {
	List(ctx context.Context, userID int64, assignedOnly bool) ([]models.AttributeDB, error)
}

// AttributeCreator defines the interface that the service must implement.
type AttributeCreator interface {
	Create(ctx context.Context, userID int64, name string) (*models.AttributeDB, error)
}

// AttributeRequest represents the JSON body for creating a tag or ingredient
// swagger:model AttributeRequest
type AttributeRequest struct {
	// Name
	// required: true
	// default: Vegan
	Name string `json:"name"`
}

// AttributeResponse represents a tag or ingredient
// swagger:model AttributeResponse
type AttributeResponse struct {
	// Identifier
	// default: 1
	ID int64 `json:"id"`

	// Name
	// default: Vegan
	Name string `json:"name"`
}

func newAttributeResponses(items []models.AttributeDB) []AttributeResponse {
	resp := make([]AttributeResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, AttributeResponse{ID: it.ID, Name: it.Name})
	}
	return resp
}

// NewAttributeListHandler returns an HTTP handler listing the caller's tags or ingredients.
// @Summary List tags or ingredients
// @Description Returns the caller's entries ordered by name descending. With assigned_only=1 only entries used by one of the caller's recipes are returned.
// @Tags recipe
// @Produce json
// @Param assigned_only query string false "Only entries linked to a recipe (1/0, true/false)"
// @Success 200 {array} handlers.AttributeResponse "Entries"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid assigned_only"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /recipes/tags [get]
// @Router /recipes/ingredients [get]
// @Security BearerAuth
func NewAttributeListHandler(svc AttributeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}

		assignedOnly := false
		if raw := r.URL.Query().Get("assigned_only"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeValidation(w, validation.Errors{"assigned_only": {"Must be a valid boolean."}})
				return
			}
			assignedOnly = v
		}

		items, err := svc.List(r.Context(), caller.ID, assignedOnly)
		if err != nil {
			writeServiceError(w, err, "failed to list attributes", "userID", caller.ID)
			return
		}

		writeJSON(w, http.StatusOK, newAttributeResponses(items))
	}
}

// NewAttributeCreateHandler returns an HTTP handler creating a tag or ingredient owned by the caller.
// @Summary Create a tag or ingredient
// @Tags recipe
// @Accept json
// @Produce json
// @Param request body handlers.AttributeRequest true "Entry"
// @Success 201 {object} handlers.AttributeResponse "Created entry"
// @Failure 400 {object} handlers.ValidationErrorResponse "Empty name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /recipes/tags [post]
// @Router /recipes/ingredients [post]
// @Security BearerAuth
func NewAttributeCreateHandler(svc AttributeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req AttributeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		item, err := svc.Create(r.Context(), caller.ID, req.Name)
		if err != nil {
			writeServiceError(w, err, "failed to create attribute", "userID", caller.ID)
			return
		}

		writeJSON(w, http.StatusCreated, AttributeResponse{ID: item.ID, Name: item.Name})
	}
}
