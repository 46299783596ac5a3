package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/recipe-api/internal/middlewares"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/stretchr/testify/require"
)

var caller = &models.UserDB{ID: 1, Email: "a@x.com", Name: "Alice", IsActive: true}

// withCaller marks the request as sent by user, as AuthMiddleware would.
func withCaller(r *http.Request, user *models.UserDB) *http.Request {
	return r.WithContext(middlewares.WithUser(r.Context(), user))
}

// withID sets the {id} route parameter.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}
