package repositories

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/recipe-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recipeRowColumns = []string{"id", "user_id", "title", "time_minutes", "price", "link", "image", "created_at", "updated_at"}

func TestRecipeRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, nil)
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name    string
		filter  models.RecipeFilter
		pattern string
		args    []driver.Value
	}{
		{
			name:    "NoFilter",
			pattern: "FROM recipes r WHERE r.user_id = $1 ORDER BY r.id DESC",
			args:    []driver.Value{int64(1)},
		},
		{
			name:    "Tags",
			filter:  models.RecipeFilter{TagIDs: []int64{3, 4}},
			pattern: "WHERE r.user_id = $1 AND EXISTS (SELECT 1 FROM recipe_tags rt WHERE rt.recipe_id = r.id AND rt.tag_id IN ($2, $3)) ORDER BY r.id DESC",
			args:    []driver.Value{int64(1), int64(3), int64(4)},
		},
		{
			name:   "TagsAndIngredients",
			filter: models.RecipeFilter{TagIDs: []int64{3}, IngredientIDs: []int64{8, 9}},
			pattern: "rt.tag_id IN ($2)) AND EXISTS (SELECT 1 FROM recipe_ingredients ri WHERE ri.recipe_id = r.id " +
				"AND ri.ingredient_id IN ($3, $4)) ORDER BY r.id DESC",
			args: []driver.Value{int64(1), int64(3), int64(8), int64(9)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery(q(tt.pattern)).
				WithArgs(tt.args...).
				WillReturnRows(sqlmock.NewRows(recipeRowColumns).
					AddRow(int64(2), int64(1), "Soup", 10, "2.50", "", "", now, now))

			recipes, err := repo.List(ctx, 1, tt.filter)
			require.NoError(t, err)
			require.Len(t, recipes, 1)
			assert.Equal(t, "Soup", recipes[0].Title)
			assert.True(t, decimal.RequireFromString("2.5").Equal(recipes[0].Price))
		})
	}

	t.Run("EmptyFilterMatchesNothing", func(t *testing.T) {
		recipes, err := repo.List(ctx, 1, models.RecipeFilter{TagIDs: []int64{}})
		require.NoError(t, err)
		assert.Empty(t, recipes)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, nil)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(q("FROM recipes r WHERE r.id = $1 AND r.user_id = $2")).
		WithArgs(int64(2), int64(1)).
		WillReturnRows(sqlmock.NewRows(recipeRowColumns).
			AddRow(int64(2), int64(1), "Soup", 10, "2.50", "https://x", "uploads/recipe/a.png", now, now))

	recipe, err := repo.GetByID(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "uploads/recipe/a.png", recipe.Image)

	mock.ExpectQuery(q("FROM recipes r WHERE r.id = $1 AND r.user_id = $2")).
		WithArgs(int64(2), int64(5)).
		WillReturnRows(sqlmock.NewRows(recipeRowColumns))

	recipe, err = repo.GetByID(ctx, 5, 2)
	assert.NoError(t, err)
	assert.Nil(t, recipe, "another user's recipe is not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_SaveAndUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, nil)
	ctx := context.Background()
	now := time.Now()

	in := &models.RecipeDB{UserID: 1, Title: "Soup", TimeMinutes: 10, Price: decimal.RequireFromString("2.50")}

	mock.ExpectQuery(q("INSERT INTO recipes (user_id, title, time_minutes, price, link, image, created_at, updated_at)")).
		WithArgs(int64(1), "Soup", 10, sqlmock.AnyArg(), "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(4), now, now))

	saved, err := repo.Save(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(4), saved.ID)

	saved.Title = "Stew"
	mock.ExpectQuery(q("UPDATE recipes SET title = $3, time_minutes = $4, price = $5, link = $6")).
		WithArgs(int64(4), int64(1), "Stew", 10, sqlmock.AnyArg(), "").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	updated, err := repo.Update(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, "Stew", updated.Title)

	mock.ExpectQuery(q("UPDATE recipes SET title")).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	updated, err = repo.Update(ctx, &models.RecipeDB{ID: 4, UserID: 2})
	assert.NoError(t, err)
	assert.Nil(t, updated)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_UpdateImageAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, nil)
	ctx := context.Background()

	mock.ExpectExec(q("UPDATE recipes SET image = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(4), int64(1), "uploads/recipe/b.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	found, err := repo.UpdateImage(ctx, 1, 4, "uploads/recipe/b.png")
	require.NoError(t, err)
	assert.True(t, found)

	mock.ExpectExec(q("DELETE FROM recipes WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(4), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err = repo.Delete(ctx, 2, 4)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_UsesRequestTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db, txFromContext)

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM recipes")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)
	ctx := context.WithValue(context.Background(), txKey{}, tx)

	found, err := repo.Delete(ctx, 1, 4)
	require.NoError(t, err)
	assert.True(t, found)
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}
