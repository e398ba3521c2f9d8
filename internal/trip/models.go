// Package trip provides travel planning services: trips with per-day outfit
// assignments, destination forecasts and generated packing lists.
package trip

import (
	"errors"
	"time"

	"github.com/getset/getset/internal/weather"
)

// ErrTripNotFound is returned when a trip does not exist.
var ErrTripNotFound = errors.New("trip not found")

// Type classifies a trip.
type Type string

const (
	TypeBusiness Type = "business"
	TypeVacation Type = "vacation"
	TypeWeekend  Type = "weekend"
)

// Valid reports whether the trip type is known.
func (t Type) Valid() bool {
	switch t {
	case TypeBusiness, TypeVacation, TypeWeekend:
		return true
	}
	return false
}

// Status describes where a trip sits relative to the current date.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusActive   Status = "active"
	StatusPast     Status = "past"
)

// Trip is a planned journey with an inclusive date range.
type Trip struct {
	ID          string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Type        Type

	// Outfits maps a date key (2006-01-02) to an outfit ID.
	Outfits map[string]string

	// Weather holds roughly one forecast snapshot per trip day. Empty when
	// the forecast fetch failed.
	Weather []*weather.Snapshot

	PackingList []string
	Notes       string
	CreatedAt   time.Time
}

// Duration returns the trip length in days, inclusive of both endpoints.
func (t *Trip) Duration() int {
	start := t.StartDate.Truncate(24 * time.Hour)
	end := t.EndDate.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}

// StatusAt returns the trip status relative to the given time.
func (t *Trip) StatusAt(now time.Time) Status {
	day := now.Truncate(24 * time.Hour)
	switch {
	case day.Before(t.StartDate.Truncate(24 * time.Hour)):
		return StatusUpcoming
	case day.After(t.EndDate.Truncate(24 * time.Hour)):
		return StatusPast
	default:
		return StatusActive
	}
}

// Update describes a partial modification to a trip. Nil fields are left
// unchanged.
type Update struct {
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Type        *Type
	Outfits     map[string]string
	PackingList []string
	Notes       *string
}
