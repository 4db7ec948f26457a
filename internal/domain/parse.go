package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when parsing a raw date cell. The source
// lists mix full ISO timestamps with bare dates depending on which export
// the row came from.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// NormalizeID canonicalizes a credit or player reference so numeric-looking
// ids compare equal across sources: whitespace is trimmed and the trailing
// ".0" artifact left by spreadsheet exports is stripped.
func NormalizeID(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), ".0")
}

// ParseFlexibleDate parses a raw date cell into a timezone-naive UTC
// timestamp. It accepts full ISO timestamps, bare dates, and truncated
// exports like "2025-10-01T07:00:". Returns nil when nothing parses.
func ParseFlexibleDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	// Truncated timestamps: keep the date part before 'T'.
	if i := strings.IndexByte(s, 'T'); i > 0 {
		if t, err := time.Parse(time.DateOnly, s[:i]); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ParseAmount coerces a raw amount cell to a decimal, defaulting to zero
// when the cell is empty or unparsable.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseCount parses an installment count cell, truncating fractional values
// to an integer. Returns nil for empty, unparsable, or negative cells; a
// credit with a nil count is excluded from schedule expansion.
func ParseCount(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return nil
	}
	n := int(f)
	return &n
}

// ParseBool interprets the completion flag cells, which arrive as
// true/false or 1/0 in varying case. Anything else is false.
func ParseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true
	default:
		return false
	}
}
