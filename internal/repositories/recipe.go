package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-api/internal/models"
)

const recipeColumns = `r.id, r.user_id, r.title, r.time_minutes, r.price, r.link, r.image, r.created_at, r.updated_at`

// RecipeRepository stores recipe rows. Links to tags and ingredients are
// handled by AttributeRepository.
type RecipeRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRecipeRepository(db *sqlx.DB, txGetter TxGetter) *RecipeRepository {
	return &RecipeRepository{db: db, txGetter: txGetter}
}

// List returns the user's recipes, newest first. Each non-nil filter keeps
// recipes linked to at least one of its ids; both filters must hold.
func (r *RecipeRepository) List(ctx context.Context, userID int64, filter models.RecipeFilter) ([]models.RecipeDB, error) {
	recipes := []models.RecipeDB{}
	if (filter.TagIDs != nil && len(filter.TagIDs) == 0) || (filter.IngredientIDs != nil && len(filter.IngredientIDs) == 0) {
		// linked to at least one of no ids: nothing matches
		return recipes, nil
	}

	ex := executor(ctx, r.db, r.txGetter)
	query := `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.user_id = ?`
	args := []any{userID}
	if filter.TagIDs != nil {
		query += ` AND EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = r.id AND rt.tag_id IN (?))`
		args = append(args, filter.TagIDs)
	}
	if filter.IngredientIDs != nil {
		query += ` AND EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = r.id AND ri.ingredient_id IN (?))`
		args = append(args, filter.IngredientIDs)
	}
	query += ` ORDER BY r.id DESC`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}
	query = ex.Rebind(query)

	err = sqlx.SelectContext(ctx, ex, &recipes, query, args...)
	logQuery(query, args, len(recipes), err)

	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByID returns the recipe when it exists and belongs to userID, nil otherwise.
func (r *RecipeRepository) GetByID(ctx context.Context, userID, id int64) (*models.RecipeDB, error) {
	const query = `SELECT ` + recipeColumns + ` FROM recipes r WHERE r.id = $1 AND r.user_id = $2`

	var recipe models.RecipeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &recipe, query, id, userID)
	logQuery(query, []any{id, userID}, recipe.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Save inserts a recipe and fills in the generated id and timestamps.
func (r *RecipeRepository) Save(ctx context.Context, recipe *models.RecipeDB) (*models.RecipeDB, error) {
	const query = `
		INSERT INTO recipes (user_id, title, time_minutes, price, link, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Link, recipe.Image}

	saved := *recipe
	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	logQuery(query, args, saved.ID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update writes the scalar fields of recipe. Ownership is part of the match,
// so a recipe of another user is reported as missing (nil).
func (r *RecipeRepository) Update(ctx context.Context, recipe *models.RecipeDB) (*models.RecipeDB, error) {
	const query = `
		UPDATE recipes
		SET title = $3, time_minutes = $4, price = $5, link = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`
	args := []any{recipe.ID, recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Link}

	saved := *recipe
	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&saved.UpdatedAt)
	logQuery(query, args, saved.UpdatedAt, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateImage points the recipe at a new storage key ("" clears it) and
// reports whether the recipe was found.
func (r *RecipeRepository) UpdateImage(ctx context.Context, userID, id int64, image string) (bool, error) {
	const query = `UPDATE recipes SET image = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`
	return r.exec(ctx, query, id, userID, image)
}

// Delete removes the recipe and its links, reporting whether it was found.
func (r *RecipeRepository) Delete(ctx context.Context, userID, id int64) (bool, error) {
	const query = `DELETE FROM recipes WHERE id = $1 AND user_id = $2`
	return r.exec(ctx, query, id, userID)
}

func (r *RecipeRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
