// Package overview реализует HTTP-обработчик обзора популярных монет.
package overview

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

// Service возвращает обзор рынка.
type Service interface {
	Overview(ctx context.Context) ([]models.MarketEntry, error)
}

// Response — обзор рынка.
type Response struct {
	MarketData []models.MarketEntry `json:"market_data"`
}

// Handler обрабатывает GET /market_data.
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
// @Summary Обзор рынка
// @Description Цены и изменение за 24 часа для десяти популярных монет.
// @Tags Market
// @Produce  json
// @Success 200 {object} Response
// @Failure 500 {object} response.ErrorResponse "Поставщик данных недоступен"
// @Router /market_data [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.market.overview"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	entries, err := h.service.Overview(r.Context())
	if err != nil {
		log.Error("failed to load market overview", sl.Err(err))
		status, body := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}
	if entries == nil {
		entries = []models.MarketEntry{}
	}

	render.JSON(w, r, Response{MarketData: entries})
}
