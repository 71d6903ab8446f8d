// Package create реализует HTTP-обработчик добавления актива в портфель.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// Service добавляет актив пользователю.
type Service interface {
	AddHolding(ctx context.Context, userID int64, req models.NewHolding) (*models.Holding, error)
}

// Response — созданный или дополненный актив.
type Response struct {
	Holding *models.Holding `json:"holding"`
}

// Handler обрабатывает POST /holdings.
type Handler struct {
	log              *slog.Logger
	portfolioService Service
	validate         *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, portfolioService Service) *Handler {
	return &Handler{
		log:              log,
		portfolioService: portfolioService,
		validate:         validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавление актива
// @Description Добавляет криптовалюту в портфель. Если символ уже есть, количество суммируется, а цена покупки усредняется.
// @Tags Holdings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.NewHolding true "Актив"
// @Success 201 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Нет токена или токен неверен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /holdings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.holdings.create"

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

	var req models.NewHolding
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	holding, err := h.portfolioService.AddHolding(r.Context(), identity.UserID, req)
	if err != nil {
		status, body := response.FromError(err)
		if status >= http.StatusInternalServerError {
			log.Error("failed to add holding", sl.Err(err))
		} else {
			log.Warn("holding rejected", sl.Err(err))
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Info("holding saved", slog.Int64("holding_id", holding.ID), slog.String("symbol", holding.Symbol))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, Response{Holding: holding})
}
