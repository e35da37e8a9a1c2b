package AbstractFunctions

import (
	"time"
)

// Wire formats shared with the desktop client.
const (
	PayloadDateLayout  = "2006-01-02T15:04"
	ResponseDateLayout = "02/01/2006 15:04:05"
	SearchDateLayout   = "2006-01-02"
)

func ParsePayloadDate(value string) (time.Time, error) {
	return time.ParseInLocation(PayloadDateLayout, value, time.Local)
}

// ParsePayloadDateOr falls back when the payload date is empty or malformed.
func ParsePayloadDateOr(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	parsed, err := ParsePayloadDate(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func FormatResponseDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return ""
	}
	return value.Format(ResponseDateLayout)
}

func ParseSearchDate(value string) (time.Time, error) {
	return time.ParseInLocation(SearchDateLayout, value, time.Local)
}

// MonthsSince returns the whole calendar months elapsed from a date to now,
// ignoring a partial trailing month.
func MonthsSince(from, now time.Time) int {
	months := (now.Year()-from.Year())*12 + int(now.Month()) - int(from.Month())
	if from.AddDate(0, months, 0).After(now) {
		months--
	}
	return months
}
