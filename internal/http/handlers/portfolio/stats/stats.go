// Package stats реализует HTTP-обработчик аналитики портфеля.
package stats

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

// Service считает аналитику портфеля.
type Service interface {
	Analytics(ctx context.Context, userID int64) (*models.PortfolioAnalytics, error)
}

// Handler обрабатывает GET /portfolio/stats.
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
// @Summary Аналитика портфеля
// @Description Стоимость, вложения, прибыль в процентах, лучшая и худшая позиции.
// @Tags Portfolio
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} models.PortfolioAnalytics
// @Failure 401 {object} response.ErrorResponse "Нет токена или токен неверен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /portfolio/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.portfolio.stats"

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

	analytics, err := h.service.Analytics(r.Context(), identity.UserID)
	if err != nil {
		log.Error("failed to build analytics", sl.Err(err))
		status, body := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	render.JSON(w, r, analytics)
}
