package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/services"
	"github.com/sbilibin2017/recipe-api/internal/validation"
	"github.com/shopspring/decimal"
)

// RecipeLister defines the interface that the service must implement.
type RecipeLister interface {
	List(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error)
}

// RecipeGetter defines the interface that the service must implement.
type RecipeGetter interface {
	Get(ctx context.Context, userID, id int64) (*models.RecipeDetail, error)
	ImageURL(key string) string
}

// RecipeCreator defines the interface that the service must implement.
type RecipeCreator interface {
	Create(ctx context.Context, userID int64, in services.RecipeInput) (*models.Recipe, error)
}

// RecipeUpdater defines the interface that the service must implement.
type RecipeUpdater interface {
	Update(ctx context.Context, userID, id int64, in services.RecipeInput) (*models.Recipe, error)
	Patch(ctx context.Context, userID, id int64, in services.RecipeInput) (*models.Recipe, error)
}

// RecipeDeleter defines the interface that the service must implement.
type RecipeDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// RecipeRequest represents the JSON body for creating or updating a recipe
// swagger:model RecipeRequest
type RecipeRequest struct {
	// Title
	// required: true
	// default: Soup
	Title *string `json:"title"`

	// Preparation time in minutes, not negative
	// required: true
	// default: 10
	TimeMinutes *int `json:"time_minutes"`

	// Price with at most two decimal places, as string or number
	// required: true
	// default: 2.50
	Price *decimal.Decimal `json:"price" swaggertype:"string"`

	// Link to the original recipe
	// default: https://example.com/soup
	Link *string `json:"link"`

	// Ids of the caller's tags
	Tags []int64 `json:"tags"`

	// Ids of the caller's ingredients
	Ingredients []int64 `json:"ingredients"`
}

func (req RecipeRequest) input() services.RecipeInput {
	return services.RecipeInput{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	}
}

// RecipeSummaryResponse represents a recipe in listings and write results
// swagger:model RecipeSummaryResponse
type RecipeSummaryResponse struct {
	// Identifier
	// default: 1
	ID int64 `json:"id"`

	// Title
	// default: Soup
	Title string `json:"title"`

	// Preparation time in minutes
	// default: 10
	TimeMinutes int `json:"time_minutes"`

	// Price
	// default: 2.50
	Price string `json:"price"`

	// Link to the original recipe
	Link string `json:"link"`

	// Ids of linked tags
	Tags []int64 `json:"tags"`

	// Ids of linked ingredients
	Ingredients []int64 `json:"ingredients"`
}

func newRecipeSummary(r models.Recipe) RecipeSummaryResponse {
	return RecipeSummaryResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price.StringFixed(services.PriceDecimalPlaces),
		Link:        r.Link,
		Tags:        r.TagIDs,
		Ingredients: r.IngredientIDs,
	}
}

// RecipeDetailResponse represents a single recipe with nested tags and ingredients
// swagger:model RecipeDetailResponse
type RecipeDetailResponse struct {
	// Identifier
	// default: 1
	ID int64 `json:"id"`

	// Title
	// default: Soup
	Title string `json:"title"`

	// Preparation time in minutes
	// default: 10
	TimeMinutes int `json:"time_minutes"`

	// Price
	// default: 2.50
	Price string `json:"price"`

	// Link to the original recipe
	Link string `json:"link"`

	// Image URL, null without image
	Image *string `json:"image"`

	// Linked tags
	Tags []AttributeResponse `json:"tags"`

	// Linked ingredients
	Ingredients []AttributeResponse `json:"ingredients"`
}

func newRecipeDetail(d *models.RecipeDetail, imageURL string) RecipeDetailResponse {
	resp := RecipeDetailResponse{
		ID:          d.ID,
		Title:       d.Title,
		TimeMinutes: d.TimeMinutes,
		Price:       d.Price.StringFixed(services.PriceDecimalPlaces),
		Link:        d.Link,
		Tags:        newAttributeResponses(d.Tags),
		Ingredients: newAttributeResponses(d.Ingredients),
	}
	if imageURL != "" {
		resp.Image = &imageURL
	}
	return resp
}

// parseIDs parses a comma separated list of ids. An empty value disables the filter (nil).
func parseIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// NewRecipeListHandler returns an HTTP handler listing the caller's recipes.
// @Summary List recipes
// @Description Returns the caller's recipes, newest first. tags and ingredients keep recipes linked to at least one of the given ids; both filters must match.
// @Tags recipe
// @Produce json
// @Param tags query string false "Comma separated tag ids"
// @Param ingredients query string false "Comma separated ingredient ids"
// @Success 200 {array} handlers.RecipeSummaryResponse "Recipes"
// @Failure 400 {object} handlers.ValidationErrorResponse "Malformed id list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /recipes [get]
// @Security BearerAuth
func NewRecipeListHandler(svc RecipeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}

		var filter models.RecipeFilter
		errs := validation.Errors{}
		q := r.URL.Query()
		if ids, err := parseIDs(q.Get("tags")); err != nil {
			errs.Add("tags", "Enter a comma separated list of ids.")
		} else {
			filter.TagIDs = ids
		}
		if ids, err := parseIDs(q.Get("ingredients")); err != nil {
			errs.Add("ingredients", "Enter a comma separated list of ids.")
		} else {
			filter.IngredientIDs = ids
		}
		if len(errs) > 0 {
			writeValidation(w, errs)
			return
		}

		recipes, err := svc.List(r.Context(), caller.ID, filter)
		if err != nil {
			writeServiceError(w, err, "failed to list recipes", "userID", caller.ID)
			return
		}

		resp := make([]RecipeSummaryResponse, 0, len(recipes))
		for _, rec := range recipes {
			resp = append(resp, newRecipeSummary(rec))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewRecipeGetHandler returns an HTTP handler for a single recipe of the caller.
// @Summary Get a recipe
// @Tags recipe
// @Produce json
// @Param id path int true "Recipe id"
// @Success 200 {object} handlers.RecipeDetailResponse "Recipe"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /recipes/{id} [get]
// @Security BearerAuth
func NewRecipeGetHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := recipeID(w, r)
		if !ok {
			return
		}

		detail, err := svc.Get(r.Context(), caller.ID, id)
		if err != nil {
			writeServiceError(w, err, "failed to get recipe", "userID", caller.ID, "recipeID", id)
			return
		}

		writeJSON(w, http.StatusOK, newRecipeDetail(detail, svc.ImageURL(detail.Image)))
	}
}

// NewRecipeCreateHandler returns an HTTP handler creating a recipe owned by the caller.
// @Summary Create a recipe
// @Description Tag and ingredient ids that do not belong to the caller are ignored.
// @Tags recipe
// @Accept json
// @Produce json
// @Param request body handlers.RecipeRequest true "Recipe"
// @Success 201 {object} handlers.RecipeSummaryResponse "Created recipe"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /recipes [post]
// @Security BearerAuth
func NewRecipeCreateHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req RecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		recipe, err := svc.Create(r.Context(), caller.ID, req.input())
		if err != nil {
			writeServiceError(w, err, "failed to create recipe", "userID", caller.ID)
			return
		}

		writeJSON(w, http.StatusCreated, newRecipeSummary(*recipe))
	}
}

// NewRecipeUpdateHandler returns an HTTP handler updating a recipe of the caller.
// PUT replaces the recipe and clears omitted link, tags and ingredients;
// PATCH changes only the supplied fields.
// @Summary Update a recipe
// @Tags recipe
// @Accept json
// @Produce json
// @Param id path int true "Recipe id"
// @Param request body handlers.RecipeRequest true "Recipe fields"
// @Success 200 {object} handlers.RecipeSummaryResponse "Updated recipe"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /recipes/{id} [put]
// @Router /recipes/{id} [patch]
// @Security BearerAuth
func NewRecipeUpdateHandler(svc RecipeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := recipeID(w, r)
		if !ok {
			return
		}

		var req RecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		update := svc.Update
		if r.Method == http.MethodPatch {
			update = svc.Patch
		}

		recipe, err := update(r.Context(), caller.ID, id, req.input())
		if err != nil {
			writeServiceError(w, err, "failed to update recipe", "userID", caller.ID, "recipeID", id)
			return
		}

		writeJSON(w, http.StatusOK, newRecipeSummary(*recipe))
	}
}

// NewRecipeDeleteHandler returns an HTTP handler deleting a recipe of the caller.
// @Summary Delete a recipe
// @Tags recipe
// @Param id path int true "Recipe id"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /recipes/{id} [delete]
// @Security BearerAuth
func NewRecipeDeleteHandler(svc RecipeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := recipeID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), caller.ID, id); err != nil {
			writeServiceError(w, err, "failed to delete recipe", "userID", caller.ID, "recipeID", id)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
