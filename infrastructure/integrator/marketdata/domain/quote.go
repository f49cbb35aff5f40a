package domain

import "github.com/shopspring/decimal"

// Quote is a single symbol price as returned by the provider.
type Quote struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Timestamp int64           `json:"timestamp"`
}

// GetQuotesParams carries the symbols to resolve in one provider call.
type GetQuotesParams struct {
	Symbols []string
}
