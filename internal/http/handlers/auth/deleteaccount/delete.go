// Package deleteaccount реализует удаление учётной записи вместе с активами.
package deleteaccount

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// Service удаляет пользователя.
type Service interface {
	DeleteAccount(ctx context.Context, identity models.Identity) error
}

// Handler обрабатывает DELETE /profile.
type Handler struct {
	log         *slog.Logger
	authService Service
}

// New создает новый Handler.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
	}
}

// ServeHTTP godoc
// @Summary Удаление учётной записи
// @Description Удаляет пользователя, его активы удаляются каскадно.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse "Нет токена или токен неверен"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.deleteaccount"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("identity missing in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.authService.DeleteAccount(r.Context(), identity); err != nil {
		status, body := response.FromError(err)
		log.Error("failed to delete account", sl.Err(err))
		if status == http.StatusNotFound {
			body = response.Error("user not found")
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Info("account deleted", slog.Int64("user_id", identity.UserID))
	render.JSON(w, r, response.Message("account deleted"))
}
