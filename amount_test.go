package vinti4net

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "2500", want: "2500"},
		{name: "decimal string", in: "12.345", want: "12.345"},
		{name: "int", in: 1500, want: "1500"},
		{name: "float", in: 12.345, want: "12.345"},
		{name: "decimal", in: decimal.RequireFromString("99.99"), want: "99.99"},
		{name: "padded", in: " 10 ", want: "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []any{"", "abc", "-1", -5, []int{1}} {
		_, err := ParseAmount(in)
		require.Error(t, err, "%v", in)
		assert.True(t, errors.Is(err, ErrInvalidArgument))

		var iae *InvalidArgumentError
		require.ErrorAs(t, err, &iae)
		assert.Equal(t, "amount", iae.Field)
	}
}

func TestScaleAmount(t *testing.T) {
	tests := map[string]int64{
		"12.345":  12345,
		"12.3456": 12345,
		"12.3459": 12345,
		"2500":    2500000,
		"0":       0,
		"0.0009":  0,
	}
	for in, want := range tests {
		got, err := ScaleAmount(decimal.RequireFromString(in))
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestScaleAmount_OutOfRange(t *testing.T) {
	_, err := ScaleAmount(decimal.RequireFromString("99999999999999999999"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ScaleAmount(decimal.RequireFromString("-99999999999999999999"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	got, err := ScaleAmount(decimal.RequireFromString("9223372036854775.807"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	_, err = ScaleAmount(decimal.RequireFromString("9223372036854775.808"))
	assert.Error(t, err)

	_, err = ParseAmount("99999999999999999999")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "0", scaledAmountText("99999999999999999999"))
}

func TestScaledAmountText(t *testing.T) {
	assert.Equal(t, "1000", scaledAmountText("1"))
	assert.Equal(t, "2500000", scaledAmountText("2500.00"))
	assert.Equal(t, "0", scaledAmountText(""))
	assert.Equal(t, "0", scaledAmountText("n/a"))
}
