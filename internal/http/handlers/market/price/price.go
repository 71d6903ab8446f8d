// Package price реализует HTTP-обработчик текущей цены монеты.
package price

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/crypto-portfolio/internal/http/response"
	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

// Service возвращает котировку по символу.
type Service interface {
	Quote(ctx context.Context, symbol string) (models.Quote, error)
}

// Response — котировка монеты в USD.
type Response struct {
	Symbol    string          `json:"symbol" example:"BTC"`
	Price     decimal.Decimal `json:"price" swaggertype:"number" example:"65000.12"`
	Change24h decimal.Decimal `json:"change_24h" swaggertype:"number" example:"-1.5"`
}

// Handler обрабатывает GET /crypto_price/{symbol}.
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
// @Summary Цена монеты
// @Tags Market
// @Produce  json
// @Param symbol path string true "Символ монеты, например BTC"
// @Success 200 {object} Response
// @Failure 500 {object} response.ErrorResponse "Поставщик цен недоступен"
// @Router /crypto_price/{symbol} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.market.price"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))
	quote, err := h.service.Quote(r.Context(), symbol)
	if err != nil {
		log.Error("failed to fetch quote", slog.String("symbol", symbol), sl.Err(err))
		status, body := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, body)
		return
	}

	render.JSON(w, r, Response{Symbol: symbol, Price: quote.Price, Change24h: quote.Change24h})
}
