// Package aggregate computes summary statistics over record lists. Every
// function is pure; callers pass the current slice on each read.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoTop is reported by Top when there is nothing to rank.
const NoTop = "N/A"

var hundred = decimal.NewFromInt(100)

// Count returns the number of records.
func Count[T any](records []T) int {
	return len(records)
}

// Sum adds value(r) over all records.
func Sum[T any](records []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(value(r))
	}
	return total
}

// CountWhere counts the records matching pred.
func CountWhere[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Distinct counts the unique keys among records.
func Distinct[T any, K comparable](records []T, key func(T) K) int {
	seen := make(map[K]struct{}, len(records))
	for _, r := range records {
		seen[key(r)] = struct{}{}
	}
	return len(seen)
}

// Percentage returns part/total*100 rounded to one decimal place, or zero
// when total is zero.
func Percentage(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(total)), 8).
		Round(1)
}

// Average returns sum/count, or zero when count is zero.
func Average(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.DivRound(decimal.NewFromInt(int64(count)), 8)
}

// Ratio returns a/b, or zero when b is zero.
func Ratio(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, 8)
}

// WithinDays reports whether date falls between today and today+days, both
// inclusive, using the calendar day of now.
func WithinDays(now time.Time, date time.Time, days int) bool {
	today := truncateDay(now)
	day := truncateDay(date)
	return !day.Before(today) && !day.After(today.AddDate(0, 0, days))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
