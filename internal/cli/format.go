// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/runcastdev/runcast/internal/model"
)

// FormatAmount formats a monetary amount with comma grouping and two
// decimals. e.g., 1234.5 -> "1,234.50". Engine values are never rounded;
// rounding happens here, at the edge.
func FormatAmount(v float64) string {
	neg := v < 0
	v = math.Abs(v)

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	s := fmt.Sprintf("%s.%02d", FormatNumber(whole), cents)
	if neg {
		return "-" + s
	}
	return s
}

// FormatSignedAmount is FormatAmount with an explicit sign, for net flows.
func FormatSignedAmount(v float64) string {
	if v >= 0 {
		return "+" + FormatAmount(v)
	}
	return FormatAmount(v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatFactor formats a 0-1 factor such as a decay multiplier.
func FormatFactor(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// FormatMonth renders a month as its canonical "YYYY-MM" key.
func FormatMonth(m model.Month) string {
	return m.Key()
}

// FormatDate renders a date in the CLI's standard form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ShortID returns the first segment of a uuid, enough to address a record
// on the command line.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
