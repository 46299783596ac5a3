package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-api/internal/models"
)

// attributeTables names the catalog table and the recipe join table of a kind.
type attributeTables struct {
	table      string // catalog table
	joinTable  string // recipe <-> attribute join table
	joinColumn string // attribute id column in joinTable
}

var tablesByKind = map[models.AttributeKind]attributeTables{
	models.KindTag:        {table: "tags", joinTable: "recipe_tags", joinColumn: "tag_id"},
	models.KindIngredient: {table: "ingredients", joinTable: "recipe_ingredients", joinColumn: "ingredient_id"},
}

// AttributeRepository stores one attribute catalog (tags or ingredients)
// and its links to recipes.
type AttributeRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
	attributeTables
}

// NewAttributeRepository panics on an unknown kind.
func NewAttributeRepository(db *sqlx.DB, kind models.AttributeKind, txGetter TxGetter) *AttributeRepository {
	tables, ok := tablesByKind[kind]
	if !ok {
		panic(fmt.Sprintf("unknown attribute kind %q", kind))
	}
	return &AttributeRepository{db: db, txGetter: txGetter, attributeTables: tables}
}

func NewTagRepository(db *sqlx.DB, txGetter TxGetter) *AttributeRepository {
	return NewAttributeRepository(db, models.KindTag, txGetter)
}

func NewIngredientRepository(db *sqlx.DB, txGetter TxGetter) *AttributeRepository {
	return NewAttributeRepository(db, models.KindIngredient, txGetter)
}

// List returns the user's attributes ordered by name descending. With
// assignedOnly it keeps only those linked to at least one of the user's recipes.
func (r *AttributeRepository) List(ctx context.Context, userID int64, assignedOnly bool) ([]models.AttributeDB, error) {
	query := `SELECT a.id, a.user_id, a.name FROM ` + r.table + ` a WHERE a.user_id = $1`
	if assignedOnly {
		query += ` AND EXISTS (
			SELECT 1 FROM ` + r.joinTable + ` j
			JOIN recipes rc ON rc.id = j.recipe_id
			WHERE j.` + r.joinColumn + ` = a.id AND rc.user_id = $1
		)`
	}
	query += ` ORDER BY a.name DESC, a.id DESC`

	attrs := []models.AttributeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &attrs, query, userID)
	logQuery(query, []any{userID, assignedOnly}, len(attrs), err)

	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// Save inserts an attribute owned by userID.
func (r *AttributeRepository) Save(ctx context.Context, userID int64, name string) (*models.AttributeDB, error) {
	query := `INSERT INTO ` + r.table + ` (user_id, name) VALUES ($1, $2) RETURNING id, user_id, name`

	var attr models.AttributeDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &attr, query, userID, name)
	logQuery(query, []any{userID, name}, attr.ID, err)

	if err != nil {
		return nil, err
	}
	return &attr, nil
}

// FilterOwned returns the subset of ids that exist and belong to userID, ascending.
func (r *AttributeRepository) FilterOwned(ctx context.Context, userID int64, ids []int64) ([]int64, error) {
	owned := []int64{}
	if len(ids) == 0 {
		return owned, nil
	}

	ex := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`SELECT id FROM `+r.table+` WHERE user_id = ? AND id IN (?) ORDER BY id`, userID, ids)
	if err != nil {
		return nil, err
	}
	query = ex.Rebind(query)

	err = sqlx.SelectContext(ctx, ex, &owned, query, args...)
	logQuery(query, args, owned, err)

	if err != nil {
		return nil, err
	}
	return owned, nil
}

// ListByRecipe returns the attributes linked to a recipe ordered by name descending.
func (r *AttributeRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]models.AttributeDB, error) {
	query := `
		SELECT a.id, a.user_id, a.name
		FROM ` + r.table + ` a
		JOIN ` + r.joinTable + ` j ON j.` + r.joinColumn + ` = a.id
		WHERE j.recipe_id = $1
		ORDER BY a.name DESC, a.id DESC
	`

	attrs := []models.AttributeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &attrs, query, recipeID)
	logQuery(query, []any{recipeID}, len(attrs), err)

	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// LinkedIDs returns, per recipe, the ascending ids of linked attributes.
// Recipes without links are absent from the map.
func (r *AttributeRepository) LinkedIDs(ctx context.Context, recipeIDs []int64) (map[int64][]int64, error) {
	links := make(map[int64][]int64, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return links, nil
	}

	ex := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(
		`SELECT recipe_id, `+r.joinColumn+` AS attribute_id FROM `+r.joinTable+
			` WHERE recipe_id IN (?) ORDER BY recipe_id, attribute_id`,
		recipeIDs,
	)
	if err != nil {
		return nil, err
	}
	query = ex.Rebind(query)

	var rows []struct {
		RecipeID    int64 `db:"recipe_id"`
		AttributeID int64 `db:"attribute_id"`
	}
	err = sqlx.SelectContext(ctx, ex, &rows, query, args...)
	logQuery(query, args, len(rows), err)

	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		links[row.RecipeID] = append(links[row.RecipeID], row.AttributeID)
	}
	return links, nil
}

// SetForRecipe replaces the recipe's links with ids. An empty ids clears them.
func (r *AttributeRepository) SetForRecipe(ctx context.Context, recipeID int64, ids []int64) error {
	ex := executor(ctx, r.db, r.txGetter)

	deleteQuery := `DELETE FROM ` + r.joinTable + ` WHERE recipe_id = $1`
	_, err := ex.ExecContext(ctx, deleteQuery, recipeID)
	logQuery(deleteQuery, []any{recipeID}, nil, err)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	values := make([]string, 0, len(ids))
	args := make([]any, 0, 2*len(ids))
	for _, id := range ids {
		values = append(values, "(?, ?)")
		args = append(args, recipeID, id)
	}
	insertQuery := ex.Rebind(`INSERT INTO ` + r.joinTable + ` (recipe_id, ` + r.joinColumn + `) VALUES ` +
		strings.Join(values, ", ") + ` ON CONFLICT DO NOTHING`)

	res, err := ex.ExecContext(ctx, insertQuery, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(insertQuery, args, rowsAffected, err)

	return err
}
