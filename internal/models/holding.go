package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding — позиция пользователя по одной криптовалюте (таблица crypto).
type Holding struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	Name           string          `json:"name"`
	Symbol         string          `json:"symbol"`
	Quantity       decimal.Decimal `json:"quantity"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	PriceChange24h decimal.Decimal `json:"price_change_24h"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// CurrentValue возвращает текущую стоимость позиции.
func (h Holding) CurrentValue() decimal.Decimal {
	return h.Quantity.Mul(h.CurrentPrice)
}

// Invested возвращает сумму, вложенную в позицию.
func (h Holding) Invested() decimal.Decimal {
	return h.Quantity.Mul(h.PurchasePrice)
}

// ProfitLossPercentage возвращает изменение цены относительно цены покупки в процентах.
// Для нулевой цены покупки возвращает ноль.
func (h Holding) ProfitLossPercentage() decimal.Decimal {
	if !h.PurchasePrice.IsPositive() {
		return decimal.Zero
	}
	return h.CurrentPrice.Sub(h.PurchasePrice).Div(h.PurchasePrice).Mul(decimal.NewFromInt(100))
}

// NewHolding используется для приёма данных о новой позиции из JSON-запроса.
type NewHolding struct {
	Name          string          `json:"name" validate:"required,max=50"`
	Symbol        string          `json:"symbol" validate:"required,max=10"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// Withdrawal описывает результат частичного или полного вывода актива.
type Withdrawal struct {
	HoldingID int64           `json:"holding_id"`
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
	Remaining decimal.Decimal `json:"remaining"`
	Removed   bool            `json:"removed"`
}
