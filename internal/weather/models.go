// Package weather provides weather snapshots with caching.
package weather

import (
	"errors"
	"time"
)

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrNoLocation          = errors.New("no location given")
)

// Condition represents the general weather condition.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionClouds       Condition = "clouds"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionDrizzle      Condition = "drizzle"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionMist         Condition = "mist"
	ConditionFog          Condition = "fog"
)

// Snapshot represents weather for a location at a point in time.
type Snapshot struct {
	// Temperatures in Celsius
	Temp      float64
	FeelsLike float64

	Condition   Condition
	Description string
	Icon        string

	// Humidity percentage (0-100)
	Humidity int

	// Wind speed in km/h
	WindSpeed float64

	// When the snapshot applies
	Date time.Time

	// Location label, when known
	Location string
}
