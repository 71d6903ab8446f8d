package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var readyQuery = regexp.QuoteMeta(`SELECT EXISTS (`)

func TestStorage_CheckDatabaseReady(t *testing.T) {
	t.Run("schema present", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(readyQuery).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, s.CheckDatabaseReady(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("schema missing", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(readyQuery).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		err := s.CheckDatabaseReady(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required table crypto missing")
	})
}

func TestStorage_WaitReady(t *testing.T) {
	t.Run("ready after retry", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(readyQuery).WillReturnError(errors.New("connection refused"))
		mock.ExpectQuery(readyQuery).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, s.WaitReady(context.Background(), 3, time.Millisecond))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(readyQuery).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(readyQuery).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		err := s.WaitReady(context.Background(), 2, time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not ready after 2 attempts")
	})

	t.Run("context cancelled", func(t *testing.T) {
		s, mock := newMockStorage(t)
		mock.ExpectQuery(readyQuery).WillReturnError(errors.New("connection refused"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := s.WaitReady(ctx, 5, time.Hour)
		require.ErrorIs(t, err, context.Canceled)
	})
}
