package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-api/internal/models"
)

type TokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// GetOrCreate stores key for the user unless the user already has a token,
// in which case the existing token is returned unchanged.
func (r *TokenRepository) GetOrCreate(ctx context.Context, userID int64, key string) (*models.TokenDB, error) {
	const query = `
		INSERT INTO tokens (key, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET user_id = tokens.user_id
		RETURNING key, user_id, created_at
	`

	var token models.TokenDB
	err := r.db.GetContext(ctx, &token, query, key, userID)
	logQuery(query, []any{userID}, token.CreatedAt, err)

	if err != nil {
		return nil, err
	}
	return &token, nil
}

// GetUserByKey returns the owner of key, or nil when the key is unknown.
func (r *TokenRepository) GetUserByKey(ctx context.Context, key string) (*models.UserDB, error) {
	const query = `
		SELECT u.id, u.email, u.name, u.password_hash, u.is_active, u.is_staff, u.is_superuser, u.created_at, u.updated_at
		FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, key)
	logQuery(query, []any{"***"}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
