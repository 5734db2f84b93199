package model

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Currency is one of the closed set of tracked currencies. Amounts in
// different currencies are displayed separately and never converted or summed
// into one figure.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyILS Currency = "ILS"
	CurrencyEUR Currency = "EUR"
)

// DefaultCurrency is assumed for items that carry no currency.
const DefaultCurrency = CurrencyILS

// Currencies returns the supported currencies in display order.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyILS, CurrencyEUR}
}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyILS, CurrencyEUR:
		return true
	}
	return false
}

// OrDefault returns c if it is a supported currency and DefaultCurrency
// otherwise. Stored items may predate the closed set, so unknown values are
// folded into the default rather than rejected.
func (c Currency) OrDefault() Currency {
	if c.Valid() {
		return c
	}
	return DefaultCurrency
}

// Symbol returns the display symbol for the currency, e.g. "₪" for ILS.
func (c Currency) Symbol() string {
	return money.GetCurrency(string(c.OrDefault())).Grapheme
}

// FormatPrice renders a price with its currency symbol, e.g. "₪12.34".
func FormatPrice(price float64, c Currency) string {
	return fmt.Sprintf("%s%.2f", c.Symbol(), price)
}
