package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts menu price text like "$10" or "12.99" into an amount.
// The upstream menu JSON carries prices as unvalidated free text, so any
// leading currency symbol is stripped and anything unparsable degrades to 0
// rather than failing the whole computation.
func ParsePrice(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	// Skip a leading currency marker ("$", "USD ", ...) by cutting to the
	// first character that can start a number.
	start := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || r == '.' || (r >= '0' && r <= '9')
	})
	if start < 0 {
		return 0
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s[start:]), 64)
	if err != nil {
		return 0
	}
	return value
}

// FormatPrice renders an amount for order summaries, e.g. 12.5 -> "$12.50".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
