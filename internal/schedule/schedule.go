package schedule

import (
	"time"

	"github.com/rcarver/lux/internal/constants"
)

// Config holds the colour temperature schedule parameters.
type Config struct {
	DayTemp         float64
	NightTemp       float64
	TransitionHours float64
}

// HourFraction returns the local wall-clock hour of t as a fractional
// number, e.g. 18:30 -> 18.5.
func HourFraction(t time.Time) float64 {
	local := t.Local()
	return float64(local.Hour()) + float64(local.Minute())/60
}

// TargetTemperature returns the colour temperature for the given local
// hour fraction. The day temperature holds until the evening transition
// window, ramps linearly down to the night temperature at 18:00, and the
// night temperature holds until 06:00. There is no morning ramp; the
// schedule jumps straight back to the day temperature at 06:00.
func TargetTemperature(hour float64, cfg Config) float64 {

	if hour >= constants.NightStartHour || hour <= constants.DayStartHour {
		return cfg.NightTemp
	}

	// a non-positive window means an instantaneous switch at 18:00
	if cfg.TransitionHours <= 0 {
		return cfg.DayTemp
	}

	if hour >= constants.NightStartHour-cfg.TransitionHours {
		progress := (constants.NightStartHour - hour) / cfg.TransitionHours
		return cfg.DayTemp*progress + cfg.NightTemp*(1-progress)
	}

	return cfg.DayTemp
}
