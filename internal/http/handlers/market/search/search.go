// Package search реализует HTTP-обработчик поиска монет.
package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// Service ищет монеты по названию или символу.
type Service interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// Request — поисковый запрос.
type Request struct {
	Query string `json:"query" example:"bit"`
}

// Response — найденные монеты.
type Response struct {
	Results []models.SearchResult `json:"results"`
}

// Handler обрабатывает POST /search_crypto.
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
// @Summary Поиск монет
// @Description Запрос короче двух символов возвращает пустой список.
// @Tags Market
// @Accept  json
// @Produce  json
// @Param request body Request true "Поисковый запрос"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Поставщик данных недоступен"
// @Router /search_crypto [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.market.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	results, err := h.service.Search(r.Context(), req.Query)
	if err != nil {
		log.Error("search failed", slog.String("query", req.Query), sl.Err(err))
		status, body := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	render.JSON(w, r, Response{Results: results})
}
