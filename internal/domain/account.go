package domain

import "strings"

// NormalizeUsername trims surrounding whitespace off a username.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// Balance is the amount a user holds in one currency.
type Balance struct {
	Username     string
	CurrencyCode string
	Amount       float64
}

type DepositResult struct {
	Username     string
	CurrencyCode string
	Balance      float64
}

type TransferResult struct {
	Username        string
	FromCurrency    string
	ToCurrency      string
	ConvertedAmount float64
	FromBalance     float64
	ToBalance       float64
}

type SetBalanceResult struct {
	Username     string
	CurrencyCode string
	Balance      float64
}
