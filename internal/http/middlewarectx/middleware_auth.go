// Package middlewarectx содержит HTTP middleware сервиса: проверку JWT,
// CORS, ограничение частоты запросов и учёт метрик.
//
// JWTMiddleware проверяет заголовок Authorization вида "Bearer <token>"
// и в случае успеха кладёт в контекст личность пользователя из токена.
// В случае ошибки проверки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// IdentityKey — ключ личности пользователя в контексте.
const IdentityKey Key = "identity"

// Authenticator проверяет заголовок Authorization.
type Authenticator interface {
	Authenticate(authorization string) (models.Identity, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
func JWTMiddleware(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			identity, err := auth.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				log.Warn("request rejected", sl.Err(err))
				status, body := response.FromError(err)
				render.Status(r, status)
				render.JSON(w, r, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// WithIdentity возвращает контекст с личностью пользователя.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// IdentityFromContext достаёт личность пользователя, положенную JWTMiddleware.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(models.Identity)
	return identity, ok
}
