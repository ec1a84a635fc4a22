package currency

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Currency identifies one of the currencies the ledger files may carry.
// The string value is the ISO 4217 code, which is also the token written
// to disk next to each amount.
type Currency string

const (
	SEK Currency = "SEK"
	EUR Currency = "EUR"
)

// countryCurrencies maps a ledger country code to its currency.
var countryCurrencies = map[string]Currency{
	"se": SEK,
	"es": EUR,
}

// Code returns the ISO code as written in .dat files.
func (c Currency) Code() string {
	return string(c)
}

// Symbol returns the display glyph for prompts ("kr", "€").
func (c Currency) Symbol() string {
	cur := money.GetCurrency(string(c))
	if cur == nil {
		return string(c)
	}
	return cur.Grapheme
}

// ForCountry returns the currency used by a country code ("se", "es").
func ForCountry(country string) (Currency, error) {
	c, ok := countryCurrencies[country]
	if !ok {
		return "", fmt.Errorf("unknown country code %q", country)
	}
	return c, nil
}

// ParseToken converts an on-disk currency token to a Currency.
func ParseToken(tok string) (Currency, error) {
	switch Currency(tok) {
	case SEK, EUR:
		return Currency(tok), nil
	}
	return "", fmt.Errorf("unknown currency token %q", tok)
}

// Countries returns the recognized country codes in stable order.
func Countries() []string {
	return []string{"se", "es"}
}
