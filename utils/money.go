package utils

import (
	"strconv"
	"strings"
)

// FormatEUR formats an integer amount in euro cents as a string like "12,50 €".
// Uses comma as decimal separator and dot as thousands separator (es-ES).
func FormatEUR(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	euros := cents / 100
	rest := cents % 100

	s := strconv.FormatInt(euros, 10)

	var b strings.Builder
	// Pre-allocate: digits + separators + decimals + sign + symbol
	b.Grow(len(s) + len(s)/3 + 8)
	if neg {
		b.WriteByte('-')
	}

	// Insert thousands separators from the left.
	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}

	b.WriteByte(',')
	if rest < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(rest, 10))
	b.WriteString(" €")

	return b.String()
}
