// Package outfit provides outfit management services.
package outfit

import (
	"errors"
	"time"

	"github.com/getset/getset/internal/weather"
)

// Repository errors.
var (
	ErrOutfitNotFound = errors.New("outfit not found")
)

// Outfit represents the clothes worn (or planned) on a single date.
// At most one outfit exists per date.
type Outfit struct {
	ID      string
	Date    time.Time // normalized to UTC midnight
	ItemIDs []string
	Photo   *string
	Notes   string
	Weather *weather.Snapshot
}

// NormalizeDate truncates a time to its UTC calendar date.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the absolute number of days between two dates.
func DaysBetween(a, b time.Time) int {
	diff := NormalizeDate(a).Sub(NormalizeDate(b))
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
