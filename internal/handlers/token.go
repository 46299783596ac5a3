package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/recipe-api/internal/services"
)

// TokenIssuer defines the interface that the service must implement.
type TokenIssuer interface {
	IssueToken(ctx context.Context, email, password string) (string, error)
}

// TokenRequest represents the JSON body for token issuance
// swagger:model TokenRequest
type TokenRequest struct {
	// Email
	// required: true
	// default: a@x.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret1
	Password string `json:"password"`
}

// TokenResponse represents a successful token issuance
// swagger:model TokenResponse
type TokenResponse struct {
	// Bearer token, sent as "Authorization: Bearer <token>"
	// default: 9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b
	Token string `json:"token"`
}

const msgBadCredentials = "Unable to authenticate with provided credentials."

// NewTokenHandler returns an HTTP handler that exchanges credentials for the user's token.
// @Summary Obtain an auth token
// @Description Checks the credentials and returns the user's bearer token. The same token is returned on every call.
// @Tags user
// @Accept json
// @Produce json
// @Param request body handlers.TokenRequest true "Credentials"
// @Success 200 {object} handlers.TokenResponse "Token"
// @Failure 400 {object} handlers.ErrorResponse "Unable to authenticate with provided credentials"
// @Router /users/token [post]
func NewTokenHandler(svc TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgBadCredentials)
			return
		}

		token, err := svc.IssueToken(r.Context(), req.Email, req.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, msgBadCredentials)
			return
		}
		if err != nil {
			writeServiceError(w, err, "failed to issue token")
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}
