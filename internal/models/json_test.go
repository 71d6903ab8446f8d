package models_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crypto-portfolio/internal/models"
)

func TestPortfolioStats_EncodesNumbers(t *testing.T) {
	stats := models.PortfolioStats{
		Count:           2,
		TotalValue:      decimal.NewFromInt(40),
		TotalInvested:   decimal.NewFromInt(120),
		TotalProfitLoss: decimal.NewFromInt(-80),
	}

	raw, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{"crypto_count":2,"total_value":40,"total_invested":120,"total_profit_loss":-80}`, string(raw))
}

func TestHolding_DecimalsKeepPrecisionAsNumbers(t *testing.T) {
	h := models.Holding{
		Symbol:        "BTC",
		Quantity:      decimal.RequireFromString("0.12345678"),
		PurchasePrice: decimal.RequireFromString("65000.5"),
	}
	raw, err := json.Marshal(h)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var got map[string]any
	require.NoError(t, dec.Decode(&got))
	assert.Equal(t, json.Number("0.12345678"), got["quantity"])
	assert.Equal(t, json.Number("65000.5"), got["purchase_price"])
}

func TestNewHolding_AcceptsQuotedAndBareNumbers(t *testing.T) {
	var req models.NewHolding
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Bitcoin","symbol":"BTC","quantity":"0.5","purchase_price":30000}`), &req))
	assert.True(t, req.Quantity.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, req.PurchasePrice.Equal(decimal.NewFromInt(30000)))
}
