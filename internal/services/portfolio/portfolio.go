// Package services содержит бизнес-логику портфеля: агрегирование,
// управление активами и аналитику.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/crypto-portfolio/internal/lib/sl"
	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

const (
	maxNameLength   = 50
	maxSymbolLength = 10
	// amountScale — число знаков после запятой в колонках NUMERIC(20,8).
	amountScale = 8
)

var (
	hundred = decimal.NewFromInt(100)
	// amountLimit — первое значение, не помещающееся в NUMERIC(20,8).
	amountLimit = decimal.New(1, 20-amountScale)
	// dustQuantity — остаток, при котором актив удаляется целиком.
	dustQuantity = decimal.RequireFromString("0.001")
)

// checkAmount проверяет, что значение хранится в NUMERIC(20,8) без округления.
func checkAmount(field string, v decimal.Decimal) error {
	if !v.Round(amountScale).Equal(v) {
		return fmt.Errorf("%w: %s must have at most %d decimal places", models.ErrValidation, field, amountScale)
	}
	if v.Abs().GreaterThanOrEqual(amountLimit) {
		return fmt.Errorf("%w: %s must be less than %s", models.ErrValidation, field, amountLimit)
	}
	return nil
}

// HoldingRepository определяет методы для работы с активами в хранилище.
type HoldingRepository interface {
	// ListHoldings возвращает все активы пользователя.
	ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error)
	// GetHoldingBySymbol возвращает актив пользователя по символу; models.ErrNotFound, если его нет.
	GetHoldingBySymbol(ctx context.Context, userID int64, symbol string) (*models.Holding, error)
	// GetHolding возвращает актив пользователя по id; models.ErrNotFound, если его нет.
	GetHolding(ctx context.Context, userID, id int64) (*models.Holding, error)
	// CreateHolding сохраняет новый актив.
	CreateHolding(ctx context.Context, h models.Holding) (*models.Holding, error)
	// UpdateHolding сохраняет изменённый актив.
	UpdateHolding(ctx context.Context, h models.Holding) error
	// DeleteHolding удаляет актив пользователя.
	DeleteHolding(ctx context.Context, userID, id int64) error
}

// QuoteProvider возвращает текущие котировки. FreshQuote не использует кэш.
type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (models.Quote, error)
	FreshQuote(ctx context.Context, symbol string) (models.Quote, error)
}

// PortfolioService реализует бизнес-логику работы с портфелем.
type PortfolioService struct {
	repo   HoldingRepository
	quotes QuoteProvider
	log    *slog.Logger
	now    func() time.Time
}

// NewPortfolioService создает новый экземпляр PortfolioService.
func NewPortfolioService(repo HoldingRepository, quotes QuoteProvider, log *slog.Logger) *PortfolioService {
	return &PortfolioService{
		repo:   repo,
		quotes: quotes,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Aggregate считает количество активов, текущую стоимость, вложения и прибыль.
// Пустой список даёт нули.
func Aggregate(holdings []models.Holding) models.PortfolioStats {
	stats := models.PortfolioStats{
		Count:           len(holdings),
		TotalValue:      decimal.Zero,
		TotalInvested:   decimal.Zero,
		TotalProfitLoss: decimal.Zero,
	}
	for _, h := range holdings {
		stats.TotalValue = stats.TotalValue.Add(h.CurrentValue())
		stats.TotalInvested = stats.TotalInvested.Add(h.Invested())
	}
	stats.TotalProfitLoss = stats.TotalValue.Sub(stats.TotalInvested)
	return stats
}

// Summary возвращает сводку портфеля пользователя.
func (s *PortfolioService) Summary(ctx context.Context, userID int64) (models.PortfolioStats, error) {
	const op = "services.portfolio.Summary"
	holdings, err := s.repo.ListHoldings(ctx, userID)
	if err != nil {
		return models.PortfolioStats{}, fmt.Errorf("%s: %w", op, err)
	}
	return Aggregate(holdings), nil
}

// ListHoldings возвращает активы пользователя.
func (s *PortfolioService) ListHoldings(ctx context.Context, userID int64) ([]models.Holding, error) {
	const op = "services.portfolio.ListHoldings"
	holdings, err := s.repo.ListHoldings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return holdings, nil
}

// AddHolding добавляет актив. Если актив с тем же символом уже есть, количество
// суммируется, а цена покупки становится средним старой и новой цены.
func (s *PortfolioService) AddHolding(ctx context.Context, userID int64, req models.NewHolding) (*models.Holding, error) {
	const op = "services.portfolio.AddHolding"
	name := strings.TrimSpace(req.Name)
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))

	switch {
	case name == "" || symbol == "":
		return nil, fmt.Errorf("%w: name and symbol are required", models.ErrValidation)
	case utf8.RuneCountInString(name) > maxNameLength:
		return nil, fmt.Errorf("%w: name must be at most %d characters", models.ErrValidation, maxNameLength)
	case utf8.RuneCountInString(symbol) > maxSymbolLength:
		return nil, fmt.Errorf("%w: symbol must be at most %d characters", models.ErrValidation, maxSymbolLength)
	case !req.Quantity.IsPositive():
		return nil, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
	case req.PurchasePrice.IsNegative():
		return nil, fmt.Errorf("%w: purchase price must not be negative", models.ErrValidation)
	}
	if err := checkAmount("quantity", req.Quantity); err != nil {
		return nil, err
	}
	if err := checkAmount("purchase price", req.PurchasePrice); err != nil {
		return nil, err
	}

	now := s.now()
	existing, err := s.repo.GetHoldingBySymbol(ctx, userID, symbol)
	switch {
	case err == nil:
		merged := existing.Quantity.Add(req.Quantity)
		if err := checkAmount("total quantity", merged); err != nil {
			return nil, err
		}
		existing.Quantity = merged
		existing.PurchasePrice = existing.PurchasePrice.Add(req.PurchasePrice).Div(decimal.NewFromInt(2)).Round(8)
		existing.LastUpdated = now
		if err := s.repo.UpdateHolding(ctx, *existing); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return existing, nil
	case !errors.Is(err, models.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	quote, err := s.quotes.Quote(ctx, symbol)
	if err != nil {
		s.log.Warn("failed to fetch quote for new holding, storing zero price",
			slog.String("symbol", symbol), sl.Err(err))
		quote = models.Quote{}
	}

	created, err := s.repo.CreateHolding(ctx, models.Holding{
		UserID:         userID,
		Name:           name,
		Symbol:         symbol,
		Quantity:       req.Quantity,
		PurchasePrice:  req.PurchasePrice,
		CurrentPrice:   quote.Price,
		PriceChange24h: quote.Change24h.Round(4),
		LastUpdated:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// RemoveHolding удаляет актив пользователя; чужой или несуществующий — models.ErrNotFound.
func (s *PortfolioService) RemoveHolding(ctx context.Context, userID, id int64) error {
	const op = "services.portfolio.RemoveHolding"
	if err := s.repo.DeleteHolding(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Withdraw уменьшает количество актива на quantity. Если остаётся не больше
// dustQuantity, актив удаляется. Вывод больше имеющегося — models.ErrValidation.
func (s *PortfolioService) Withdraw(ctx context.Context, userID, id int64, quantity decimal.Decimal) (*models.Withdrawal, error) {
	const op = "services.portfolio.Withdraw"
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
	}
	if err := checkAmount("quantity", quantity); err != nil {
		return nil, err
	}

	h, err := s.repo.GetHolding(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if quantity.GreaterThan(h.Quantity) {
		return nil, fmt.Errorf("%w: insufficient quantity: holding has %s %s", models.ErrValidation, h.Quantity, h.Symbol)
	}

	result := &models.Withdrawal{
		HoldingID: h.ID,
		Symbol:    h.Symbol,
		Quantity:  quantity,
		Value:     quantity.Mul(h.CurrentPrice),
		Remaining: h.Quantity.Sub(quantity),
	}

	if result.Remaining.LessThanOrEqual(dustQuantity) {
		if err := s.repo.DeleteHolding(ctx, userID, id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result.Remaining = decimal.Zero
		result.Removed = true
		s.log.Info("holding withdrawn completely", slog.Int64("holding_id", id), slog.String("symbol", h.Symbol))
		return result, nil
	}

	h.Quantity = result.Remaining
	h.LastUpdated = s.now()
	if err := s.repo.UpdateHolding(ctx, *h); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RefreshPrices обновляет текущие цены всех активов пользователя и возвращает число обновлённых.
func (s *PortfolioService) RefreshPrices(ctx context.Context, userID int64) (int, error) {
	const op = "services.portfolio.RefreshPrices"
	holdings, err := s.repo.ListHoldings(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	quotes := make(map[string]models.Quote, len(holdings))
	updated := 0
	for _, h := range holdings {
		quote, ok := quotes[h.Symbol]
		if !ok {
			quote, err = s.quotes.FreshQuote(ctx, h.Symbol)
			if err != nil {
				return updated, fmt.Errorf("%s: %w", op, err)
			}
			quotes[h.Symbol] = quote
		}
		h.CurrentPrice = quote.Price
		h.PriceChange24h = quote.Change24h.Round(4)
		h.LastUpdated = s.now()
		if err := s.repo.UpdateHolding(ctx, h); err != nil {
			return updated, fmt.Errorf("%s: %w", op, err)
		}
		updated++
	}
	return updated, nil
}

// Analytics возвращает сводку портфеля, общий процент прибыли и лучшую и худшую позиции.
func (s *PortfolioService) Analytics(ctx context.Context, userID int64) (*models.PortfolioAnalytics, error) {
	const op = "services.portfolio.Analytics"
	holdings, err := s.repo.ListHoldings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return Analyze(holdings), nil
}

// Analyze строит аналитику по списку активов.
func Analyze(holdings []models.Holding) *models.PortfolioAnalytics {
	stats := Aggregate(holdings)
	analytics := &models.PortfolioAnalytics{
		PortfolioStats:       stats,
		ProfitLossPercentage: decimal.Zero,
	}
	if stats.TotalInvested.IsPositive() {
		analytics.ProfitLossPercentage = stats.TotalProfitLoss.Div(stats.TotalInvested).Mul(hundred).Round(2)
	}

	for _, h := range holdings {
		if !h.PurchasePrice.IsPositive() {
			continue
		}
		p := &models.Performer{Name: h.Name, Symbol: h.Symbol, Performance: h.ProfitLossPercentage().Round(2)}
		if analytics.BestPerformer == nil || p.Performance.GreaterThan(analytics.BestPerformer.Performance) {
			analytics.BestPerformer = p
		}
		if analytics.WorstPerformer == nil || p.Performance.LessThan(analytics.WorstPerformer.Performance) {
			analytics.WorstPerformer = p
		}
	}

	analytics.Display = map[string]string{
		"total_value":       usd(stats.TotalValue),
		"total_invested":    usd(stats.TotalInvested),
		"total_profit_loss": usd(stats.TotalProfitLoss),
	}
	return analytics
}

// usd форматирует сумму в долларах с округлением до центов.
func usd(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
