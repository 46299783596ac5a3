package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/validation"
)

// Signupper defines the interface that the service must implement.
type Signupper interface {
	Signup(ctx context.Context, in services.SignupInput) (*models.UserDB, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Email, stored lower-cased
	// required: true
	// default: a@x.com
	Email string `json:"email"`

	// Password, at least 5 characters
	// required: true
	// default: secret1
	Password string `json:"password"`

	// Display name
	// default: Alice
	Name string `json:"name"`
}

// UserResponse represents the public fields of a user
// swagger:model UserResponse
type UserResponse struct {
	// Email
	// default: a@x.com
	Email string `json:"email"`

	// Display name
	// default: Alice
	Name string `json:"name"`
}

func newUserResponse(u *models.UserDB) UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name}
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account. The email is lower-cased and must be unique. The password is hashed before storing.
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.SignupRequest true "User registration request"
// @Success 201 {object} handlers.UserResponse "User created"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid or taken email, short password"
// @Router /users/create [post]
func NewSignupHandler(svc Signupper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Signup(r.Context(), services.SignupInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		})
		if errors.Is(err, services.ErrEmailTaken) {
			writeValidation(w, validation.Errors{"email": {"user with this email already exists."}})
			return
		}
		if err != nil {
			writeServiceError(w, err, "failed to sign up", "email", req.Email)
			return
		}

		writeJSON(w, http.StatusCreated, newUserResponse(user))
	}
}
