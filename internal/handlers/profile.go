package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.UserDB, error)
}

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, upd services.ProfileUpdate) (*models.UserDB, error)
}

// ProfileUpdateRequest represents the JSON body for a profile update. Omitted fields are kept.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// New display name
	// default: Alice
	Name *string `json:"name"`

	// New password, at least 5 characters
	// default: newsecret
	Password *string `json:"password"`
}

// NewProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get own profile
// @Tags user
// @Produce json
// @Success 200 {object} handlers.UserResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), caller.ID)
		if err != nil {
			writeServiceError(w, err, "failed to get profile", "userID", caller.ID)
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}

// NewProfileUpdateHandler returns an HTTP handler for changing the caller's name or password.
// @Summary Update own profile
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} handlers.UserResponse "Updated profile"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [patch]
// @Security BearerAuth
func NewProfileUpdateHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.UpdateProfile(r.Context(), caller.ID, services.ProfileUpdate{
			Name:     req.Name,
			Password: req.Password,
		})
		if err != nil {
			writeServiceError(w, err, "failed to update profile", "userID", caller.ID)
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}
