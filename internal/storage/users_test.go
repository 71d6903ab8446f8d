package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db), mock
}

func TestStorage_CreateUser(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	input := models.User{Username: "alice", Email: "a@x.io", PasswordHash: "$2a$12$hash"}
	query := regexp.QuoteMeta(`INSERT INTO "user" (username, email, password_hash)`)

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
		wantID  int64
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("alice", "a@x.io", "$2a$12$hash").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))
			},
			wantID: 7,
		},
		{
			name: "unique violation maps to conflict",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("alice", "a@x.io", "$2a$12$hash").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "user_username_key"})
			},
			wantErr: models.ErrConflict,
		},
		{
			name: "other database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("alice", "a@x.io", "$2a$12$hash").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMockStorage(t)
			tt.setup(mock)

			got, err := s.CreateUser(context.Background(), input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				if errors.Is(tt.wantErr, models.ErrConflict) {
					assert.ErrorIs(t, err, models.ErrConflict)
				} else {
					assert.NotErrorIs(t, err, models.ErrConflict)
					assert.Contains(t, err.Error(), "storage.CreateUser")
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.ID)
				assert.Equal(t, createdAt, got.CreatedAt)
				assert.Equal(t, "alice", got.Username)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStorage_ExistsByUsernameOrEmail(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM "user" WHERE username = $1 OR email = $2)`)).
		WithArgs("alice", "a@x.io").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.ExistsByUsernameOrEmail(context.Background(), "alice", "a@x.io")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_GetUserByUsername(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, username, email, password_hash, created_at`)

	t.Run("found", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(query).WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
				AddRow(int64(1), "alice", "a@x.io", "hash", createdAt))

		u, err := s.GetUserByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		assert.Equal(t, "hash", u.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(query).WithArgs("Alice").WillReturnError(sql.ErrNoRows)

		u, err := s.GetUserByUsername(context.Background(), "Alice")
		require.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStorage_GetUserByID_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "user"`)).WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	u, err := s.GetUserByID(context.Background(), 42)
	assert.Nil(t, u)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_DeleteUser(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM "user" WHERE id = $1`)

	t.Run("deleted", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec(query).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.DeleteUser(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectExec(query).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.DeleteUser(context.Background(), 3)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStorage_CanceledContext(t *testing.T) {
	s, mock := newMockStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetUserByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.ListHoldings(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}
