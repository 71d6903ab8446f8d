package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) RemoveHolding(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRemoveHandler(t *testing.T) {
	tests := []struct {
		name       string
		urlID      string
		mockID     int64
		mockErr    error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "deleted",
			urlID:      "42",
			mockID:     42,
			callsSvc:   true,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"holding deleted"}`,
		},
		{
			name:       "invalid id",
			urlID:      "abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid id"}`,
		},
		{
			name:       "negative id",
			urlID:      "-1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid id"}`,
		},
		{
			name:       "someone else's holding",
			urlID:      "7",
			mockID:     7,
			mockErr:    fmt.Errorf("services.portfolio.RemoveHolding: %w", models.ErrNotFound),
			callsSvc:   true,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"holding not found"}`,
		},
		{
			name:       "storage failure",
			urlID:      "7",
			mockID:     7,
			mockErr:    errors.New("db down"),
			callsSvc:   true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.callsSvc {
				svc.On("RemoveHolding", mock.Anything, int64(3), tt.mockID).Return(tt.mockErr).Once()
			}

			r := chi.NewRouter()
			r.Delete("/holdings/{id}", New(newNoopLogger(), svc).ServeHTTP)

			req := httptest.NewRequest(http.MethodDelete, "/holdings/"+tt.urlID, nil)
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), models.Identity{UserID: 3}))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
