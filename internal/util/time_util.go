package util

import (
	"time"
)

// NewDate returns midnight UTC for the given calendar day, the canonical
// representation of a day-granular date everywhere in this module.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
