package schedule_test

import (
	"testing"
	"time"

	"github.com/rcarver/lux/internal/schedule"
	"github.com/stretchr/testify/assert"
)

func Test_TargetTemperature(t *testing.T) {

	cfg := schedule.Config{DayTemp: 6500, NightTemp: 3500, TransitionHours: 2.0}

	tests := []struct {
		name     string
		hour     float64
		cfg      schedule.Config
		expected float64
	}{
		{
			name:     "midnight is full night",
			hour:     0.0,
			cfg:      cfg,
			expected: 3500,
		},
		{
			name:     "06:00 is still night",
			hour:     6.0,
			cfg:      cfg,
			expected: 3500,
		},
		{
			name:     "just after 06:00 jumps to day",
			hour:     6.1,
			cfg:      cfg,
			expected: 6500,
		},
		{
			name:     "midday is full day",
			hour:     12.0,
			cfg:      cfg,
			expected: 6500,
		},
		{
			name:     "start of transition window",
			hour:     16.0,
			cfg:      cfg,
			expected: 6500,
		},
		{
			name:     "halfway through transition window",
			hour:     17.0,
			cfg:      cfg,
			expected: 5500,
		},
		{
			name:     "three quarters through transition window",
			hour:     17.5,
			cfg:      cfg,
			expected: 4750,
		},
		{
			name:     "18:00 is full night",
			hour:     18.0,
			cfg:      cfg,
			expected: 3500,
		},
		{
			name:     "late evening is full night",
			hour:     22.5,
			cfg:      cfg,
			expected: 3500,
		},
		{
			name:     "zero transition window switches instantly at 18:00",
			hour:     17.5,
			cfg:      schedule.Config{DayTemp: 6500, NightTemp: 3500, TransitionHours: 0},
			expected: 6500,
		},
		{
			name:     "negative transition window switches instantly at 18:00",
			hour:     17.99,
			cfg:      schedule.Config{DayTemp: 6500, NightTemp: 3500, TransitionHours: -1},
			expected: 6500,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.expected, schedule.TargetTemperature(test.hour, test.cfg), 1e-9)
		})
	}
}

func Test_TargetTemperature_NeverOvershoots(t *testing.T) {

	cfg := schedule.Config{DayTemp: 6500, NightTemp: 3500, TransitionHours: 2.0}

	for hour := 0.0; hour < 24; hour += 0.05 {
		temp := schedule.TargetTemperature(hour, cfg)
		assert.GreaterOrEqual(t, temp, cfg.NightTemp, "hour %v", hour)
		assert.LessOrEqual(t, temp, cfg.DayTemp, "hour %v", hour)
	}
}

func Test_HourFraction(t *testing.T) {

	tests := []struct {
		name     string
		time     time.Time
		expected float64
	}{
		{
			name:     "on the hour",
			time:     time.Date(2023, 6, 21, 18, 0, 0, 0, time.Local),
			expected: 18.0,
		},
		{
			name:     "half past",
			time:     time.Date(2023, 6, 21, 18, 30, 0, 0, time.Local),
			expected: 18.5,
		},
		{
			name:     "quarter to",
			time:     time.Date(2023, 6, 21, 5, 45, 0, 0, time.Local),
			expected: 5.75,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, schedule.HourFraction(test.time))
		})
	}
}
