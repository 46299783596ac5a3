package models

import "time"

// TokenDB is the single bearer token issued to a user.
type TokenDB struct {
	Key       string    `db:"key"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
