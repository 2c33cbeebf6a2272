package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is the in-game currency used when a request omits one.
const DefaultCurrency = "CRD"

// Money pairs a decimal amount with its currency code.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}
