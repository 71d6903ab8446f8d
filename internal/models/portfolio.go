package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioStats — агрегированная статистика портфеля пользователя.
type PortfolioStats struct {
	Count           int             `json:"crypto_count"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalInvested   decimal.Decimal `json:"total_invested"`
	TotalProfitLoss decimal.Decimal `json:"total_profit_loss"`
}

// Performer описывает лучшую или худшую позицию портфеля.
type Performer struct {
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Performance decimal.Decimal `json:"performance"`
}

// PortfolioAnalytics — расширенная статистика для страницы аналитики.
type PortfolioAnalytics struct {
	PortfolioStats
	ProfitLossPercentage decimal.Decimal   `json:"profit_loss_percentage"`
	BestPerformer        *Performer        `json:"best_performer"`
	WorstPerformer       *Performer        `json:"worst_performer"`
	Display              map[string]string `json:"display"`
}

// Quote — текущая цена монеты в USD и изменение за 24 часа.
type Quote struct {
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change_24h"`
}

// SearchResult — найденная монета.
type SearchResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Image  string `json:"image"`
}

// MarketEntry — строка обзора рынка.
type MarketEntry struct {
	Name           string          `json:"name"`
	Symbol         string          `json:"symbol"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	PriceChange24h decimal.Decimal `json:"price_change_24h"`
	Image          string          `json:"image"`
}

// PriceRefreshJob — сообщение очереди на обновление цены символа.
type PriceRefreshJob struct {
	Symbol      string    `json:"symbol"`
	RequestedAt time.Time `json:"requested_at"`
}
