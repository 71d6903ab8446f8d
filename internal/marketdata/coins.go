package marketdata

import "strings"

// symbolToID сопоставляет тикер монеты её идентификатору в CoinGecko.
var symbolToID = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"ADA":   "cardano",
	"DOT":   "polkadot",
	"LINK":  "chainlink",
	"LTC":   "litecoin",
	"XRP":   "ripple",
	"BNB":   "binancecoin",
	"DOGE":  "dogecoin",
	"SOL":   "solana",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
	"UNI":   "uniswap",
	"ATOM":  "cosmos",
	"VET":   "vechain",
	"FIL":   "filecoin",
	"TRX":   "tron",
	"ETC":   "ethereum-classic",
	"XLM":   "stellar",
	"BCH":   "bitcoin-cash",
}

// popularIDs — монеты обзора рынка, в порядке вывода.
var popularIDs = []string{
	"bitcoin", "ethereum", "cardano", "polkadot", "chainlink",
	"litecoin", "ripple", "binancecoin", "dogecoin", "solana",
}

// CoinID возвращает идентификатор CoinGecko для известного тикера.
func CoinID(symbol string) (string, bool) {
	id, ok := symbolToID[strings.ToUpper(symbol)]
	return id, ok
}

// symbolFor возвращает тикер для известного идентификатора.
func symbolFor(id string) string {
	for symbol, coinID := range symbolToID {
		if coinID == id {
			return symbol
		}
	}
	return strings.ToUpper(id)
}
