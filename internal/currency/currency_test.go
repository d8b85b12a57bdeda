package currency_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"imobicrm/internal/currency"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{0.5, "0,50"},
		{999.99, "999,99"},
		{1234.5, "1.234,50"},
		{100000, "100.000,00"},
		{1000000, "1.000.000,00"},
		{850000.1, "850.000,10"},
		{-1234.5, "-1.234,50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, currency.Format(tc.in))
	}
}

func TestFormatPtr(t *testing.T) {
	assert.Equal(t, "0,00", currency.FormatPtr(nil))

	v := 1234.5
	assert.Equal(t, "1.234,50", currency.FormatPtr(&v))
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"0,00", 0},
		{"1.234,56", 1234.56},
		{"999999", 999999},
		{"12.34", 1234}, // dot is a thousands separator, never a decimal point
		{"850.000,10", 850000.10},
		{"-1.234,50", -1234.50},
	}
	for _, tc := range cases {
		got, err := currency.Parse(tc.in)
		assert.NoError(t, err, "input %q", tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, "input %q", tc.in)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"abc", "12,34,56", "R$ 100"} {
		_, err := currency.Parse(in)
		assert.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, currency.ErrInvalidAmount), "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, 0.01, 1, 999.99, 1234.5, 123456.78, 999999999.99, -42.1}
	for _, v := range values {
		parsed, err := currency.Parse(currency.Format(v))
		assert.NoError(t, err)
		assert.InDelta(t, v, parsed, 1e-6)
	}
}
