package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeDB represents a recipe row. Tag and ingredient links live in join tables.
type RecipeDB struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Title       string          `db:"title"`
	TimeMinutes int             `db:"time_minutes"`
	Price       decimal.Decimal `db:"price"`
	Link        string          `db:"link"`
	Image       string          `db:"image"` // storage path, empty when no image is attached
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// RecipeFilter narrows a recipe listing. A nil slice disables that filter;
// a recipe matches when it is linked to at least one of the listed ids.
type RecipeFilter struct {
	TagIDs        []int64
	IngredientIDs []int64
}

// Recipe is a recipe together with the ids of its linked tags and ingredients.
type Recipe struct {
	RecipeDB
	TagIDs        []int64
	IngredientIDs []int64
}

// RecipeDetail is a recipe with its tags and ingredients resolved to rows.
type RecipeDetail struct {
	RecipeDB
	Tags        []AttributeDB
	Ingredients []AttributeDB
}
