package models

import "time"

// Location is an IP-derived geographic position, used to parameterise
// the weather lookup.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// WeatherSnapshot is a single reading from the weather service,
// consumed once and discarded.
type WeatherSnapshot struct {
	Sunrise       time.Time
	Sunset        time.Time
	CloudCoverage float64 // percent, 0-100
}

// Gamma holds per-channel multipliers in [0,1] approximating a colour
// temperature on the display.
type Gamma struct {
	Red   float64
	Green float64
	Blue  float64
}

// MonitorPlan is the settings to apply to one monitor for this run.
type MonitorPlan struct {
	Monitor    string
	Brightness float64
	Gamma      Gamma
}

// ApplyOutcome records the per-monitor result of the apply phase.
// Failures are collected rather than aborting sibling monitors.
type ApplyOutcome struct {
	Monitor string
	Err     error
}
