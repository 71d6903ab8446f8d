package verify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

type VerifierMock struct {
	mock.Mock
}

func (m *VerifierMock) VerifyToken(ctx context.Context, authorization string) (models.Identity, error) {
	args := m.Called(ctx, authorization)
	return args.Get(0).(models.Identity), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVerifyHandler(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		identity   models.Identity
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			identity:   models.Identity{UserID: 9, Username: "carol", Email: "carol@example.com"},
			wantStatus: http.StatusOK,
			wantBody:   `{"valid":true,"user":{"userId":9,"username":"carol","email":"carol@example.com"}}`,
		},
		{
			name:       "expired token",
			header:     "Bearer old",
			err:        fmt.Errorf("%w: %w", models.ErrUnauthorized, jwt.ErrExpired),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"valid":false,"error":"token expired"}`,
		},
		{
			name:       "malformed header",
			header:     "Token abc",
			err:        fmt.Errorf("%w: missing bearer token", models.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"valid":false,"error":"missing or invalid authorization header"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(VerifierMock)
			svc.On("VerifyToken", mock.Anything, tt.header).Return(tt.identity, tt.err).Once()

			req := httptest.NewRequest(http.MethodGet, "/verify", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
