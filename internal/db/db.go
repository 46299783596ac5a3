package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/recipe-api/internal/logger"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// Options holds connection and pool settings.
type Options struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN builds a postgres connection URL from the options.
func (o Options) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		o.User, o.Password, o.Host, o.Port, o.Database)
}

// Open creates a pooled handle without contacting the server.
// Use WaitForDB to block until the database accepts connections.
func Open(opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, opts.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WaitForDB pings the database until it answers, the attempts are used up
// or ctx is done. attempts <= 0 means a single try.
func WaitForDB(ctx context.Context, db Pinger, attempts int, interval time.Duration) error {
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			logger.Log.Infow("database available", "attempt", i)
			return nil
		}
		logger.Log.Warnw("database unavailable, waiting", "attempt", i, "interval", interval, "error", err)

		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return fmt.Errorf("database not available after %d attempts: %w", attempts, err)
}
