package middlewarectx_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

type AuthenticatorMock struct {
	mock.Mock
}

func (m *AuthenticatorMock) Authenticate(authorization string) (models.Identity, error) {
	args := m.Called(authorization)
	return args.Get(0).(models.Identity), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	identity := models.Identity{UserID: 7, Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name           string
		authHeader     string
		mockIdentity   models.Identity
		mockErr        error
		wantStatusCode int
		wantCalled     bool
		wantError      string
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			mockErr:        fmt.Errorf("%w: missing bearer token", models.ErrUnauthorized),
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "missing or invalid authorization header",
		},
		{
			name:           "expired token",
			authHeader:     "Bearer old",
			mockErr:        fmt.Errorf("%w: %w", models.ErrUnauthorized, jwt.ErrExpired),
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "token expired",
		},
		{
			name:           "forged token",
			authHeader:     "Bearer forged",
			mockErr:        fmt.Errorf("%w: %w", models.ErrUnauthorized, jwt.ErrInvalidSignature),
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid token",
		},
		{
			name:           "valid token",
			authHeader:     "Bearer validtoken",
			mockIdentity:   identity,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthenticatorMock)
			authMock.On("Authenticate", tt.authHeader).Return(tt.mockIdentity, tt.mockErr).Once()

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				got, ok := middlewarectx.IdentityFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, identity, got)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/holdings", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			middlewarectx.JWTMiddleware(authMock, newNoopLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			if tt.wantError != "" {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantError, body["error"])
			}
			authMock.AssertExpectations(t)
		})
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middlewarectx.IdentityFromContext(req.Context())
	assert.False(t, ok)
}
