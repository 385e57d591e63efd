package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted by date fields.
const DateLayout = "2006-01-02"

// Rule inspects a single field value and returns an error message, or an
// empty string when the value is acceptable.
type Rule func(value string) string

var (
	capitalizedAlpha = regexp.MustCompile(`^[A-Z][a-zA-Z ]*$`)
	emailShape       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	positiveInt      = regexp.MustCompile(`^[1-9]\d*$`)
	wholeNumber      = regexp.MustCompile(`^\d+$`)
)

// Required rejects values that are empty after trimming.
func Required(message string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// Match rejects values that do not match expr.
func Match(expr, message string) Rule {
	re := regexp.MustCompile(expr)
	return func(value string) string {
		if !re.MatchString(value) {
			return message
		}
		return ""
	}
}

// CapitalizedAlpha requires an upper-case first letter followed by letters and spaces.
func CapitalizedAlpha(message string) Rule {
	return func(value string) string {
		if !capitalizedAlpha.MatchString(value) {
			return message
		}
		return ""
	}
}

// Digits requires exactly n ASCII digits.
func Digits(n int, message string) Rule {
	re := regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, n))
	return func(value string) string {
		if !re.MatchString(value) {
			return message
		}
		return ""
	}
}

func fitsInt(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}

// WholeNumber accepts zero or any positive integer written with digits only.
func WholeNumber(message string) Rule {
	return func(value string) string {
		if !wholeNumber.MatchString(value) || !fitsInt(value) {
			return message
		}
		return ""
	}
}

// PositiveInt accepts integers greater than zero without a leading zero.
func PositiveInt(message string) Rule {
	return func(value string) string {
		if !positiveInt.MatchString(value) || !fitsInt(value) {
			return message
		}
		return ""
	}
}

// PositiveNumber accepts any finite number strictly greater than zero.
func PositiveNumber(message string) Rule {
	return func(value string) string {
		d, err := decimal.NewFromString(value)
		if err != nil || !d.IsPositive() {
			return message
		}
		return ""
	}
}

// OneOf accepts only values from the allowed set.
func OneOf(message string, allowed ...string) Rule {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(value string) string {
		if _, ok := set[value]; !ok {
			return message
		}
		return ""
	}
}

// PrefixedID requires prefix followed by at least four digits.
func PrefixedID(prefix, message string) Rule {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `\d{4,}$`)
	return func(value string) string {
		if !re.MatchString(value) {
			return message
		}
		return ""
	}
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int, message string) Rule {
	return func(value string) string {
		if len([]rune(value)) > n {
			return message
		}
		return ""
	}
}

// MaxBytes rejects values whose UTF-8 encoding is longer than n bytes.
func MaxBytes(n int, message string) Rule {
	return func(value string) string {
		if len(value) > n {
			return message
		}
		return ""
	}
}

// StartsUpper requires the first character to be an upper-case letter.
func StartsUpper(message string) Rule {
	return func(value string) string {
		for _, r := range value {
			if !unicode.IsUpper(r) {
				return message
			}
			return ""
		}
		return message
	}
}

// Email checks the local@domain.tld shape.
func Email(message string) Rule {
	return func(value string) string {
		if !emailShape.MatchString(value) {
			return message
		}
		return ""
	}
}

// Date requires a calendar date in DateLayout.
func Date(message string) Rule {
	return func(value string) string {
		if _, err := time.Parse(DateLayout, value); err != nil {
			return message
		}
		return ""
	}
}

// Password requires at least eight characters including one upper-case
// letter and one digit.
func Password(message string) Rule {
	return func(value string) string {
		var upper, digit bool
		for _, r := range value {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		if len([]rune(value)) < 8 || !upper || !digit {
			return message
		}
		return ""
	}
}

// Optional skips rules when the value is blank.
func Optional(rules ...Rule) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return first(value, rules)
	}
}

func first(value string, rules []Rule) string {
	for _, rule := range rules {
		if msg := rule(value); msg != "" {
			return msg
		}
	}
	return ""
}
