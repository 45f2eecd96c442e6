package domain

import (
	"maps"
	"strings"
)

// BaseCurrency is the currency every stored rate is quoted against.
const BaseCurrency = "usd"

// DateLayout is the calendar date format used to key rate sets.
const DateLayout = "2006-01-02"

// Rates maps a lower-case currency code to "1 USD = rate units of the currency".
type Rates map[string]float64

func (r Rates) Clone() Rates {
	return maps.Clone(r)
}

// NormalizeCode lower-cases and trims a currency code.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
