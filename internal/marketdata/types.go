package marketdata

import "github.com/shopspring/decimal"

// simplePrice — элемент ответа /simple/price.
type simplePrice struct {
	USD       decimal.Decimal `json:"usd"`
	Change24h decimal.Decimal `json:"usd_24h_change"`
}

// searchResponse — ответ /search.
type searchResponse struct {
	Coins []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
		Thumb  string `json:"thumb"`
	} `json:"coins"`
}
