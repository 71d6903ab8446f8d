// Package list реализует HTTP-обработчик списка активов пользователя.
package list

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

// Service возвращает активы пользователя.
type Service interface {
	ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error)
}

// Response — список активов.
type Response struct {
	Holdings []models.Holding `json:"holdings"`
}

// Handler обрабатывает GET /holdings.
type Handler struct {
	log              *slog.Logger
	portfolioService Service
}

// New создает новый Handler.
func New(log *slog.Logger, portfolioService Service) *Handler {
	return &Handler{
		log:              log,
		portfolioService: portfolioService,
	}
}

// ServeHTTP godoc
// @Summary Список активов
// @Tags Holdings
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет токена или токен неверен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /holdings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.holdings.list"

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

	holdings, err := h.portfolioService.ListHoldings(r.Context(), identity.UserID)
	if err != nil {
		log.Error("failed to list holdings", sl.Err(err))
		status, body := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Debug("holdings listed", slog.Int("count", len(holdings)))
	render.JSON(w, r, Response{Holdings: holdings})
}
