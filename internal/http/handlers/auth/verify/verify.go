// Package verify реализует HTTP-обработчик проверки JWT без обращения к хранилищу.
package verify

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

// Service проверяет заголовок Authorization.
type Service interface {
	VerifyToken(ctx context.Context, authorization string) (models.Identity, error)
}

// Response — результат проверки токена.
type Response struct {
	Valid bool             `json:"valid"`
	User  *models.Identity `json:"user,omitempty"`
	Error string           `json:"error,omitempty"`
}

// Handler обрабатывает GET /verify.
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
// @Summary Проверка токена
// @Description Проверяет подпись и срок действия JWT и возвращает данные пользователя из токена.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response "Токен отсутствует, неверен или истёк"
// @Router /verify [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verify"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, err := h.authService.VerifyToken(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		log.Warn("token rejected", sl.Err(err))
		status, body := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, Response{Valid: false, Error: body.Error})
		return
	}

	render.JSON(w, r, Response{Valid: true, User: &identity})
}
