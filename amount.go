package vinti4net

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// amountScale is the fixed-point factor the fingerprint uses: amounts are
// signed as thousandths of the major unit.
const amountScale = 3

var (
	maxScaledAmount = decimal.NewFromInt(math.MaxInt64)
	minScaledAmount = decimal.NewFromInt(math.MinInt64)
)

// ParseAmount converts a string, integer, float or decimal.Decimal into an
// exact decimal. Floats go through their shortest decimal representation so
// 12.345 stays 12.345.
func ParseAmount(v any) (decimal.Decimal, error) {
	if d, ok := v.(decimal.Decimal); ok {
		return checkAmount(d)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero, invalidArgument("amount", "amount must be a number: %v", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, invalidArgument("amount", "amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalidArgument("amount", "amount must be a number, got %q", s)
	}
	return checkAmount(d)
}

func checkAmount(d decimal.Decimal) (decimal.Decimal, error) {
	if d.Sign() < 0 {
		return decimal.Zero, invalidArgument("amount", "amount must not be negative")
	}
	if _, err := ScaleAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ScaleAmount multiplies by 1000 and truncates toward zero, so 12.345 gives
// 12345 and 12.3456 also gives 12345. Results outside the int64 range are
// rejected.
func ScaleAmount(d decimal.Decimal) (int64, error) {
	scaled := d.Shift(amountScale).Truncate(0)
	if scaled.GreaterThan(maxScaledAmount) || scaled.LessThan(minScaledAmount) {
		return 0, invalidArgument("amount", "amount %s is out of range", d.String())
	}
	return scaled.IntPart(), nil
}

// scaledAmountText is the amount term of a fingerprint. Empty, malformed or
// out of range input signs as zero.
func scaledAmountText(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "0"
	}
	n, err := ScaleAmount(d)
	if err != nil {
		return "0"
	}
	return strconv.FormatInt(n, 10)
}
