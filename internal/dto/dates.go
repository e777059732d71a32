package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
)

// DateLayout is the wire format of calendar days.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

// ParseOptionalDate parses s when it is non-empty.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseDateOr parses s, returning fallback when s is empty.
func ParseDateOr(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	return ParseDate(s)
}

// FormatDate renders a calendar day.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatOptionalDate renders a calendar day, or nil.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// PeriodParams is a required date range, inclusive on both ends.
type PeriodParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// Parse returns the range as times.
func (p PeriodParams) Parse() (time.Time, time.Time, error) {
	from, err := ParseDate(p.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(p.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
