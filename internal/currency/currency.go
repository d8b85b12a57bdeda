// Package currency formats and parses monetary amounts in the
// Brazilian convention: dot as thousands separator, comma as decimal
// separator, always two decimal digits.
package currency

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount indicates text that cannot be read as a decimal
// amount after separator substitution.
var ErrInvalidAmount = errors.New("invalid amount")

// Format renders v with two decimal digits, e.g. 1234.5 -> "1.234,50".
// Formatting never fails.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// FormatPtr renders an optional amount; nil formats as "0,00".
func FormatPtr(v *float64) string {
	if v == nil {
		return Format(0)
	}
	return Format(*v)
}

// Parse is the inverse of Format: "1.234,56" -> 1234.56. Empty or
// whitespace-only input parses to zero. Anything else that is not a
// decimal number after separator substitution fails with
// ErrInvalidAmount.
func Parse(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	clean := strings.ReplaceAll(text, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return v, nil
}
