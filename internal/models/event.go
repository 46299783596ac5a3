package models

// Recipe event types published to the message broker.
const (
	EventRecipeCreated       = "recipe.created"
	EventRecipeUpdated       = "recipe.updated"
	EventRecipeDeleted       = "recipe.deleted"
	EventRecipeImageUploaded = "recipe.image_uploaded"
)

// RecipeEvent describes a committed change to a recipe.
type RecipeEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of the Event* constants
	RecipeID  int64  `json:"recipe_id"` // Affected recipe
	UserID    int64  `json:"user_id"`   // Owner of the recipe
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
