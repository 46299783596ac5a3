package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/recipe-api/internal/handlers"
	"github.com/sbilibin2017/recipe-api/internal/logger"
	"github.com/sbilibin2017/recipe-api/internal/middlewares"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/storage"
)

// routerDeps is everything the HTTP layer is built from.
type routerDeps struct {
	db          *sqlx.DB
	tokener     middlewares.Tokener
	auth        *services.AuthService
	tags        *services.AttributeService
	ingredients *services.AttributeService
	recipes     *services.RecipeService

	// local is nil when images live in S3.
	local    *storage.LocalStorage
	mediaURL string

	rateLimitRPS   float64
	rateLimitBurst int
	uploadMaxBytes int64
}

// newRouter wires handlers and middleware. ctx bounds background work such
// as rate limiter cleanup.
func newRouter(ctx context.Context, d routerDeps) http.Handler {
	authMiddleware := middlewares.AuthMiddleware(d.tokener, d.auth)
	txMiddleware := middlewares.TxMiddleware(d.db)
	rateLimit := middlewares.RateLimit(ctx, d.rateLimitRPS, d.rateLimitBurst)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/healthz", handlers.NewHealthHandler(d.db))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if d.local != nil && strings.HasPrefix(d.mediaURL, "/") {
		prefix := strings.TrimSuffix(d.mediaURL, "/")
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(d.local.Root())))
		r.Get(prefix+"/*", fs.ServeHTTP)
	}

	r.Route("/users", func(r chi.Router) {
		r.With(rateLimit).Post("/create", handlers.NewSignupHandler(d.auth))
		r.With(rateLimit).Post("/token", handlers.NewTokenHandler(d.auth))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/me", handlers.NewProfileHandler(d.auth))
			r.Patch("/me", handlers.NewProfileUpdateHandler(d.auth))
		})
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(txMiddleware)

		r.Get("/", handlers.NewRecipeListHandler(d.recipes))
		r.Post("/", handlers.NewRecipeCreateHandler(d.recipes))

		r.Get("/tags", handlers.NewAttributeListHandler(d.tags))
		r.Post("/tags", handlers.NewAttributeCreateHandler(d.tags))
		r.Get("/ingredients", handlers.NewAttributeListHandler(d.ingredients))
		r.Post("/ingredients", handlers.NewAttributeCreateHandler(d.ingredients))

		r.Route("/{id}", func(r chi.Router) {
			update := handlers.NewRecipeUpdateHandler(d.recipes)
			r.Get("/", handlers.NewRecipeGetHandler(d.recipes))
			r.Put("/", update)
			r.Patch("/", update)
			r.Delete("/", handlers.NewRecipeDeleteHandler(d.recipes))
			r.Post("/image-upload", handlers.NewImageUploadHandler(d.recipes, d.uploadMaxBytes))
		})
	})

	return r
}
