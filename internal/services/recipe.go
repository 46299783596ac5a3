package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/recipe-api/internal/logger"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/sbilibin2017/recipe-api/internal/storage"
	"github.com/sbilibin2017/recipe-api/internal/validation"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	// MaxTitleLength bounds a recipe title and link.
	MaxTitleLength = 255
	// PriceDecimalPlaces is the scale of a stored price.
	PriceDecimalPlaces = 2
)

// maxPrice is the first value not representable as NUMERIC(10,2).
var maxPrice = decimal.New(1, 8)

// RecipeStore persists recipe rows scoped by owner.
type RecipeStore interface {
	List(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.RecipeDB, error)
	GetByID(ctx context.Context, userID, id int64) (*models.RecipeDB, error)
	Save(ctx context.Context, recipe *models.RecipeDB) (*models.RecipeDB, error)
	Update(ctx context.Context, recipe *models.RecipeDB) (*models.RecipeDB, error)
	UpdateImage(ctx context.Context, userID, id int64, image string) (bool, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
}

// RecipeLinkStore manages the links between recipes and one attribute catalog.
type RecipeLinkStore interface {
	FilterOwned(ctx context.Context, userID int64, ids []int64) ([]int64, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]models.AttributeDB, error)
	LinkedIDs(ctx context.Context, recipeIDs []int64) (map[int64][]int64, error)
	SetForRecipe(ctx context.Context, recipeID int64, ids []int64) error
}

// ImageStore keeps uploaded image files.
type ImageStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RecipeInput carries recipe fields from a request. A nil pointer or slice
// means the field was not supplied.
type RecipeInput struct {
	Title         *string
	TimeMinutes   *int
	Price         *decimal.Decimal
	Link          *string
	TagIDs        []int64
	IngredientIDs []int64
}

// RecipeService manages the recipes of a user together with their tag and
// ingredient links and image.
type RecipeService struct {
	recipes     RecipeStore
	tags        RecipeLinkStore
	ingredients RecipeLinkStore
	files       ImageStore
	kafkaWriter KafkaWriter
	newID       func() uuid.UUID
	images      validation.ImageConstraints
	afterCommit AfterCommitFunc
}

// AfterCommitFunc defers fn until the transaction of ctx has committed.
type AfterCommitFunc func(ctx context.Context, fn func())

func runNow(_ context.Context, fn func()) { fn() }

// RecipeOpt configures a RecipeService.
type RecipeOpt func(*RecipeService)

// WithIDGenerator replaces the generator of image file identifiers.
func WithIDGenerator(gen func() uuid.UUID) RecipeOpt {
	return func(s *RecipeService) {
		s.newID = gen
	}
}

// WithImageConstraints replaces the accepted image formats and size.
func WithImageConstraints(c validation.ImageConstraints) RecipeOpt {
	return func(s *RecipeService) {
		s.images = c
	}
}

// WithAfterCommit defers removal of replaced or deleted image files until
// the surrounding transaction commits. By default files are removed at once.
func WithAfterCommit(hook AfterCommitFunc) RecipeOpt {
	return func(s *RecipeService) {
		s.afterCommit = hook
	}
}

// NewRecipeService creates a new RecipeService. kafkaWriter may be nil.
func NewRecipeService(
	recipes RecipeStore,
	tags RecipeLinkStore,
	ingredients RecipeLinkStore,
	files ImageStore,
	kafkaWriter KafkaWriter,
	opts ...RecipeOpt,
) *RecipeService {
	s := &RecipeService{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		files:       files,
		kafkaWriter: kafkaWriter,
		newID:       uuid.New,
		images:      validation.DefaultImageConstraints,
		afterCommit: runNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publishEvent publishes a recipe change to Kafka.
func (s *RecipeService) publishEvent(ctx context.Context, eventType string, recipe *models.RecipeDB) {
	event := models.RecipeEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		RecipeID:  recipe.ID,
		UserID:    recipe.UserID,
		Timestamp: time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal recipe event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", recipe.ID)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish recipe event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Recipe event published to Kafka", "event_id", event.EventID, "type", eventType, "recipe_id", recipe.ID)
	}
}

// validateInput checks the supplied fields. Unless partial, title,
// time_minutes and price are required.
func validateInput(in RecipeInput, partial bool) error {
	errs := validation.Errors{}

	switch {
	case in.Title == nil:
		if !partial {
			errs.Add("title", validation.MsgRequired)
		}
	default:
		if msg := validation.ValidateName(strings.TrimSpace(*in.Title), MaxTitleLength); msg != "" {
			errs.Add("title", msg)
		}
	}

	switch {
	case in.TimeMinutes == nil:
		if !partial {
			errs.Add("time_minutes", validation.MsgRequired)
		}
	case *in.TimeMinutes < 0:
		errs.Add("time_minutes", "Ensure this value is greater than or equal to 0.")
	case *in.TimeMinutes > math.MaxInt32:
		errs.Add("time_minutes", fmt.Sprintf("Ensure this value is less than or equal to %d.", math.MaxInt32))
	}

	switch {
	case in.Price == nil:
		if !partial {
			errs.Add("price", validation.MsgRequired)
		}
	case in.Price.IsNegative():
		errs.Add("price", "Ensure this value is greater than or equal to 0.")
	case !in.Price.Equal(in.Price.Truncate(PriceDecimalPlaces)):
		errs.Add("price", fmt.Sprintf("Ensure that there are no more than %d decimal places.", PriceDecimalPlaces))
	case in.Price.GreaterThanOrEqual(maxPrice):
		errs.Add("price", "Ensure that there are no more than 10 digits in total.")
	}

	if in.Link != nil && len([]rune(*in.Link)) > MaxTitleLength {
		errs.Add("link", fmt.Sprintf("Ensure this field has no more than %d characters.", MaxTitleLength))
	}

	return errs.Err()
}

// withLinks attaches tag and ingredient ids to each recipe.
func (s *RecipeService) withLinks(ctx context.Context, rows []models.RecipeDB) ([]models.Recipe, error) {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	tagLinks, err := s.tags.LinkedIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load recipe tags", "error", err)
		return nil, err
	}
	ingredientLinks, err := s.ingredients.LinkedIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load recipe ingredients", "error", err)
		return nil, err
	}

	result := make([]models.Recipe, 0, len(rows))
	for _, r := range rows {
		result = append(result, models.Recipe{
			RecipeDB:      r,
			TagIDs:        nonNil(tagLinks[r.ID]),
			IngredientIDs: nonNil(ingredientLinks[r.ID]),
		})
	}
	return result, nil
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

// setLinks keeps the ids owned by userID and makes them the recipe's links.
// Ids of other users or of missing rows are dropped.
func setLinks(ctx context.Context, store RecipeLinkStore, userID, recipeID int64, ids []int64) error {
	owned, err := store.FilterOwned(ctx, userID, ids)
	if err != nil {
		return err
	}
	return store.SetForRecipe(ctx, recipeID, owned)
}

// List returns the user's recipes, newest first, narrowed by filter.
func (s *RecipeService) List(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.Recipe, error) {
	rows, err := s.recipes.List(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "userID", userID, "error", err)
		return nil, err
	}
	return s.withLinks(ctx, rows)
}

// Get returns the recipe with its tags and ingredients. A recipe of another
// user is reported as ErrNotFound.
func (s *RecipeService) Get(ctx context.Context, userID, id int64) (*models.RecipeDetail, error) {
	recipe, err := s.recipes.GetByID(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "userID", userID, "recipeID", id, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrNotFound
	}

	tags, err := s.tags.ListByRecipe(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load recipe tags", "recipeID", id, "error", err)
		return nil, err
	}
	ingredients, err := s.ingredients.ListByRecipe(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load recipe ingredients", "recipeID", id, "error", err)
		return nil, err
	}

	return &models.RecipeDetail{RecipeDB: *recipe, Tags: tags, Ingredients: ingredients}, nil
}

// Create stores a recipe owned by userID and links the given tags and
// ingredients the user owns.
func (s *RecipeService) Create(ctx context.Context, userID int64, in RecipeInput) (*models.Recipe, error) {
	if err := validateInput(in, false); err != nil {
		return nil, err
	}

	recipe := &models.RecipeDB{
		UserID:      userID,
		Title:       strings.TrimSpace(*in.Title),
		TimeMinutes: *in.TimeMinutes,
		Price:       *in.Price,
	}
	if in.Link != nil {
		recipe.Link = *in.Link
	}

	saved, err := s.recipes.Save(ctx, recipe)
	if err != nil {
		logger.Log.Errorw("failed to save recipe", "userID", userID, "error", err)
		return nil, err
	}

	if err := setLinks(ctx, s.tags, userID, saved.ID, in.TagIDs); err != nil {
		logger.Log.Errorw("failed to link recipe tags", "recipeID", saved.ID, "error", err)
		return nil, err
	}
	if err := setLinks(ctx, s.ingredients, userID, saved.ID, in.IngredientIDs); err != nil {
		logger.Log.Errorw("failed to link recipe ingredients", "recipeID", saved.ID, "error", err)
		return nil, err
	}

	result, err := s.withLinks(ctx, []models.RecipeDB{*saved})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, models.EventRecipeCreated, saved)
	return &result[0], nil
}

// Update replaces every field of the recipe. Omitted link, tags and
// ingredients are cleared.
func (s *RecipeService) Update(ctx context.Context, userID, id int64, in RecipeInput) (*models.Recipe, error) {
	return s.update(ctx, userID, id, in, false)
}

// Patch changes only the supplied fields. Tags and ingredients are replaced
// only when supplied.
func (s *RecipeService) Patch(ctx context.Context, userID, id int64, in RecipeInput) (*models.Recipe, error) {
	return s.update(ctx, userID, id, in, true)
}

func (s *RecipeService) update(ctx context.Context, userID, id int64, in RecipeInput, partial bool) (*models.Recipe, error) {
	if err := validateInput(in, partial); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.GetByID(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "userID", userID, "recipeID", id, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrNotFound
	}

	if in.Title != nil {
		recipe.Title = strings.TrimSpace(*in.Title)
	}
	if in.TimeMinutes != nil {
		recipe.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		recipe.Price = *in.Price
	}
	switch {
	case in.Link != nil:
		recipe.Link = *in.Link
	case !partial:
		recipe.Link = ""
	}

	saved, err := s.recipes.Update(ctx, recipe)
	if err != nil {
		logger.Log.Errorw("failed to update recipe", "userID", userID, "recipeID", id, "error", err)
		return nil, err
	}
	if saved == nil {
		return nil, ErrNotFound
	}

	if !partial || in.TagIDs != nil {
		if err := setLinks(ctx, s.tags, userID, id, in.TagIDs); err != nil {
			logger.Log.Errorw("failed to link recipe tags", "recipeID", id, "error", err)
			return nil, err
		}
	}
	if !partial || in.IngredientIDs != nil {
		if err := setLinks(ctx, s.ingredients, userID, id, in.IngredientIDs); err != nil {
			logger.Log.Errorw("failed to link recipe ingredients", "recipeID", id, "error", err)
			return nil, err
		}
	}

	result, err := s.withLinks(ctx, []models.RecipeDB{*saved})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, models.EventRecipeUpdated, saved)
	return &result[0], nil
}

// Delete removes the recipe and its image file.
func (s *RecipeService) Delete(ctx context.Context, userID, id int64) error {
	recipe, err := s.recipes.GetByID(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "userID", userID, "recipeID", id, "error", err)
		return err
	}
	if recipe == nil {
		return ErrNotFound
	}

	found, err := s.recipes.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "userID", userID, "recipeID", id, "error", err)
		return err
	}
	if !found {
		return ErrNotFound
	}

	s.removeFileAfterCommit(ctx, recipe.Image)
	s.publishEvent(ctx, models.EventRecipeDeleted, recipe)
	return nil
}

// UploadImage validates the upload, stores it under a fresh name and points
// the recipe at it. The previous file is removed; on failure the recipe and
// its previous image are left untouched.
func (s *RecipeService) UploadImage(ctx context.Context, userID, id int64, filename string, r io.Reader) (*models.RecipeDB, error) {
	recipe, err := s.recipes.GetByID(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "userID", userID, "recipeID", id, "error", err)
		return nil, err
	}
	if recipe == nil {
		return nil, ErrNotFound
	}

	data, err := validation.ValidateImage(filename, r, s.images)
	if err != nil {
		logger.Log.Warnw("rejected image upload", "recipeID", id, "filename", filename, "error", err)
		return nil, err
	}

	key := storage.RecipeImagePath(s.newID(), filename)
	if err := s.files.Save(ctx, key, bytes.NewReader(data)); err != nil {
		logger.Log.Errorw("failed to store image", "recipeID", id, "key", key, "error", err)
		return nil, err
	}

	found, err := s.recipes.UpdateImage(ctx, userID, id, key)
	if err != nil || !found {
		s.removeFile(ctx, key)
		if err != nil {
			logger.Log.Errorw("failed to update recipe image", "recipeID", id, "error", err)
			return nil, err
		}
		return nil, ErrNotFound
	}

	s.removeFileAfterCommit(ctx, recipe.Image)
	recipe.Image = key

	s.publishEvent(ctx, models.EventRecipeImageUploaded, recipe)
	return recipe, nil
}

// ImageURL returns the public address of a stored image, "" for no image.
func (s *RecipeService) ImageURL(key string) string {
	if key == "" {
		return ""
	}
	return s.files.URL(key)
}

// removeFileAfterCommit removes key once the row no longer referencing it
// is committed.
func (s *RecipeService) removeFileAfterCommit(ctx context.Context, key string) {
	if key == "" {
		return
	}
	s.afterCommit(ctx, func() { s.removeFile(ctx, key) })
}

func (s *RecipeService) removeFile(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.files.Delete(ctx, key); err != nil {
		logger.Log.Errorw("failed to remove stored image", "key", key, "error", err)
	}
}
