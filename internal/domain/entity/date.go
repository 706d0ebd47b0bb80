package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
)

// DateLayout is the wire and storage format for calendar dates
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errs.NewValidationError(field, "is required")
	}
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errs.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

// TruncateToDate drops the clock part of t, keeping its calendar date in UTC
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date in DateLayout
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
