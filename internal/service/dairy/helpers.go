// Package dairy configures the record engine for every dairy entity and
// computes their summary statistics.
package dairy

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

// parseDecimal reads a value that already passed validation.
func parseDecimal(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseInt(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func parseDate(v string) (time.Time, bool) {
	t, err := time.Parse(validation.DateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func selectRule(message string, allowed []string) validation.Rule {
	return validation.OneOf(message, allowed...)
}
