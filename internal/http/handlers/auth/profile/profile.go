// Package profile реализует HTTP-обработчик профиля пользователя со сводкой портфеля.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	authsvc "github.com/magabrotheeeer/crypto-portfolio/internal/services/auth"
)

// Service возвращает профиль владельца токена из заголовка Authorization.
type Service interface {
	Profile(ctx context.Context, authorization string) (*authsvc.Profile, error)
}

// Handler обрабатывает GET /profile.
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
// @Summary Профиль пользователя
// @Description Возвращает пользователя и сводку его портфеля: количество активов, стоимость, вложения и прибыль.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} authsvc.Profile
// @Failure 401 {object} response.ErrorResponse "Нет токена, токен неверен или истёк"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	profile, err := h.authService.Profile(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		status, body := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to load profile", sl.Err(err))
		} else {
			log.Warn("profile request rejected", sl.Err(err))
		}
		if status == http.StatusNotFound {
			body = response.Error("user not found")
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	render.JSON(w, r, profile)
}
