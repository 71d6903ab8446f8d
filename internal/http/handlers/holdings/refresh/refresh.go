// Package refresh реализует HTTP-обработчик обновления текущих цен активов.
package refresh

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
)

// Service обновляет цены активов пользователя.
type Service interface {
	RefreshPrices(ctx context.Context, userID int64) (int, error)
}

// Response — число обновлённых активов.
type Response struct {
	Updated int `json:"updated" example:"3"`
}

// Handler обрабатывает POST /holdings/refresh.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновление цен
// @Description Запрашивает текущие цены всех активов пользователя у поставщика рыночных данных.
// @Tags Holdings
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет токена или токен неверен"
// @Failure 500 {object} response.ErrorResponse "Поставщик цен недоступен или внутренняя ошибка"
// @Router /holdings/refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.holdings.refresh"

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

	updated, err := h.service.RefreshPrices(r.Context(), identity.UserID)
	if err != nil {
		log.Error("failed to refresh prices", sl.Err(err), slog.Int("updated", updated))
		status, body := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Info("prices refreshed", slog.Int("updated", updated))
	render.JSON(w, r, Response{Updated: updated})
}
