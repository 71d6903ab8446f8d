// Package remove реализует HTTP-обработчик удаления актива.
package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
)

// Handler обрабатывает DELETE /holdings/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service удаляет актив пользователя.
type Service interface {
	RemoveHolding(ctx context.Context, userID, id int64) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление актива
// @Tags Holdings
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID актива"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 401 {object} response.ErrorResponse "Нет токена или токен неверен"
// @Failure 404 {object} response.ErrorResponse "Актив не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /holdings/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.holdings.remove"

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

	if err := h.service.RemoveHolding(r.Context(), identity.UserID, id); err != nil {
		status, body := response.FromError(err)
		if status == http.StatusNotFound {
			log.Warn("holding not found", slog.Int64("holding_id", id))
			body = response.Error("holding not found")
		} else {
			log.Error("failed to delete holding", sl.Err(err))
		}
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	log.Info("holding deleted", slog.Int64("holding_id", id))
	render.JSON(w, r, response.Message("holding deleted"))
}
