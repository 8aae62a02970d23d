package vinti4net

import (
	"strconv"
	"strings"
)

// CurrencyCVE is the Cabo Verde escudo, the gateway's home currency and the
// only currency accepted for refunds.
const CurrencyCVE = 132

var currencyCodes = map[string]int{
	"CVE": 132,
	"USD": 840,
	"EUR": 978,
	"BRL": 986,
	"GBP": 826,
	"JPY": 392,
	"AUD": 36,
	"CAD": 124,
	"CHF": 756,
	"CNY": 156,
	"INR": 356,
	"ZAR": 710,
	"RUB": 643,
	"MXN": 484,
	"KRW": 410,
	"SGD": 702,
}

var currencySymbols = func() map[int]string {
	m := make(map[int]string, len(currencyCodes))
	for sym, code := range currencyCodes {
		m[code] = sym
	}
	return m
}()

// CurrencyToCode maps an ISO 4217 alpha-3 symbol (any case) to its numeric
// code. Numeric input passes through unchanged.
func CurrencyToCode(currency string) (int, error) {
	c := strings.TrimSpace(currency)
	if code, ok := currencyCodes[strings.ToUpper(c)]; ok {
		return code, nil
	}
	if code, err := strconv.Atoi(c); err == nil && code >= 0 {
		return code, nil
	}
	return 0, &CurrencyError{Value: currency}
}

// CurrencySymbol returns the alpha-3 symbol for a numeric code, or the code
// itself when it is not in the table.
func CurrencySymbol(code int) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return strconv.Itoa(code)
}

// formatCurrency renders a numeric code the way it is posted: three digits,
// zero padded as in ISO 4217 (AUD is "036", not "36"). The padded form is
// also the one that enters the fingerprint.
func formatCurrency(code int) string {
	s := strconv.Itoa(code)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
