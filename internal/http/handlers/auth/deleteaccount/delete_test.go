package deleteaccount

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

type AccountServiceMock struct {
	mock.Mock
}

func (m *AccountServiceMock) DeleteAccount(ctx context.Context, identity models.Identity) error {
	return m.Called(ctx, identity).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeleteAccountHandler(t *testing.T) {
	identity := models.Identity{UserID: 4, Username: "dave", Email: "dave@example.com"}

	tests := []struct {
		name       string
		withID     bool
		mockErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "deleted", withID: true, wantStatus: http.StatusOK, wantBody: `{"message":"account deleted"}`},
		{name: "no identity", withID: false, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"unauthorized"}`},
		{
			name:       "already gone",
			withID:     true,
			mockErr:    fmt.Errorf("storage.DeleteUser: %w", models.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"user not found"}`,
		},
		{
			name:       "storage failure",
			withID:     true,
			mockErr:    errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(AccountServiceMock)
			if tt.withID {
				svc.On("DeleteAccount", mock.Anything, identity).Return(tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodDelete, "/profile", nil)
			if tt.withID {
				req = req.WithContext(middlewarectx.WithIdentity(req.Context(), identity))
			}
			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
