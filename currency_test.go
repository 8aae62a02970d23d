package vinti4net

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyToCode(t *testing.T) {
	tests := map[string]int{
		"cve":  132,
		"CVE":  132,
		" Cve": 132,
		"132":  132,
		"EUR":  978,
		"usd":  840,
		"036":  36,
		"999":  999,
	}
	for in, want := range tests {
		got, err := CurrencyToCode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestCurrencyToCode_Unknown(t *testing.T) {
	for _, in := range []string{"XYZ", "", "-1", "12a"} {
		_, err := CurrencyToCode(in)
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrInvalidCurrency), in)

		var ce *CurrencyError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, in, ce.Value)
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "CVE", CurrencySymbol(132))
	assert.Equal(t, "AUD", CurrencySymbol(36))
	assert.Equal(t, "999", CurrencySymbol(999))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "132", formatCurrency(132))
	assert.Equal(t, "036", formatCurrency(36))
	assert.Equal(t, "008", formatCurrency(8))
}
