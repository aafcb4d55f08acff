package dto

import (
	"fmt"
	"time"
)

// DateFormat format calendaire des dates sur le fil (jour près).
const DateFormat = "2006-01-02"

// ParseDate accepte une date calendaire ou un horodatage RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date invalide %q", s)
}

// FormatDate sérialise une date au format calendaire.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatDatePtr sérialise une date optionnelle, nil reste nil.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
