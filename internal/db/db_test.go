package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_DSN(t *testing.T) {
	opts := Options{Host: "pg", Port: 5433, User: "u", Password: "p", Database: "recipes"}
	assert.Equal(t, "postgres://u:p@pg:5433/recipes?sslmode=disable", opts.DSN())
}

func TestWaitForDB(t *testing.T) {
	unavailable := errors.New("connection refused")

	tests := []struct {
		name     string
		attempts int
		setup    func(m sqlmock.Sqlmock)
		wantErr  bool
	}{
		{
			name:     "available immediately",
			attempts: 3,
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectPing()
			},
		},
		{
			name:     "available after retries",
			attempts: 3,
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectPing().WillReturnError(unavailable)
				m.ExpectPing().WillReturnError(unavailable)
				m.ExpectPing()
			},
		},
		{
			name:     "never available",
			attempts: 2,
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectPing().WillReturnError(unavailable)
				m.ExpectPing().WillReturnError(unavailable)
			},
			wantErr: true,
		},
		{
			name:     "zero attempts means one try",
			attempts: 0,
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectPing().WillReturnError(unavailable)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer sqlDB.Close()

			tt.setup(mock)

			err = WaitForDB(context.Background(), sqlDB, tt.attempts, time.Millisecond)
			if tt.wantErr {
				assert.ErrorIs(t, err, unavailable)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWaitForDB_ContextCancelled(t *testing.T) {
	sqlDB, _, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = WaitForDB(ctx, sqlDB, 5, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
