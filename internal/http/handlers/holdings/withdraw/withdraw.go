// Package withdraw реализует HTTP-обработчик частичного вывода актива.
package withdraw

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// Service списывает часть актива пользователя.
type Service interface {
	Withdraw(ctx context.Context, userID, id int64, quantity decimal.Decimal) (*models.Withdrawal, error)
}

// Request — количество для вывода.
type Request struct {
	Quantity decimal.Decimal `json:"quantity" swaggertype:"number" example:"0.5"`
}

// Response — результат вывода.
type Response struct {
	Withdrawal *models.Withdrawal `json:"withdrawal"`
}

// Handler обрабатывает POST /holdings/{id}/withdraw.
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
// @Summary Вывод части актива
// @Description Уменьшает количество актива. Если остаток не больше 0.001, актив удаляется.
// @Tags Holdings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID актива"
// @Param request body Request true "Количество"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректные данные или недостаточно средств"
// @Failure 401 {object} response.ErrorResponse "Нет токена или токен неверен"
// @Failure 404 {object} response.ErrorResponse "Актив не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /holdings/{id}/withdraw [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.holdings.withdraw"

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

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		log.Warn("invalid id format", slog.String("id", idStr))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	result, err := h.service.Withdraw(r.Context(), identity.UserID, id, req.Quantity)
	if err != nil {
		status, body := response.FromError(err)
		switch {
		case status == http.StatusNotFound:
			log.Warn("holding not found", slog.Int64("holding_id", id))
			body = response.Error("holding not found")
		case status >= http.StatusInternalServerError:
			log.Error("failed to withdraw", sl.Err(err))
		default:
			log.Warn("withdrawal rejected", sl.Err(err))
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Info("holding withdrawn",
		slog.Int64("holding_id", id),
		slog.String("quantity", result.Quantity.String()),
		slog.Bool("removed", result.Removed),
	)
	render.JSON(w, r, Response{Withdrawal: result})
}
