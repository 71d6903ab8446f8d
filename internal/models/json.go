package models

import "github.com/shopspring/decimal"

// Денежные значения и количества уходят клиенту числами, а не строками.
// Разбор по-прежнему принимает обе формы.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
