package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	APIKey          string
	MinBrightness   float64
	DayTemp         float64
	NightTemp       float64
	TransitionHours float64
	Monitors        []string
	CameraDevice    string
	LogFile         string
}

// Load builds the configuration from CLI flags, environment variables
// (LUX_ prefix) and an optional config file, in that order of
// precedence.
func Load(args []string) (*Config, error) {

	flags := pflag.NewFlagSet("lux", pflag.ContinueOnError)
	flags.String("api-key", "", "OpenWeather API key (required only if no webcam is available)")
	flags.Float64("min-brightness", 0.6, "minimum brightness level (0.0 to 1.0)")
	flags.Float64("day-temp", 6500, "colour temperature during the day (Kelvin)")
	flags.Float64("night-temp", 3500, "colour temperature at night (Kelvin)")
	flags.Float64("transition-hours", 2.0, "hours before 18:00 over which to ramp from day to night temperature")
	flags.StringSlice("monitors", nil, `comma-separated monitor names, e.g. "DP-0,HDMI-0" (default: auto-detect)`)
	flags.String("camera-device", "/dev/video0", "V4L2 capture device used for ambient light sensing")
	flags.String("log-file", "", "write logs to this rotating file instead of stderr")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath("/etc/lux/")
	v.AddConfigPath("$HOME/.config/lux/")
	v.AddConfigPath(".")
	v.SetEnvPrefix("lux")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		APIKey:          v.GetString("api-key"),
		MinBrightness:   v.GetFloat64("min-brightness"),
		DayTemp:         v.GetFloat64("day-temp"),
		NightTemp:       v.GetFloat64("night-temp"),
		TransitionHours: v.GetFloat64("transition-hours"),
		Monitors:        v.GetStringSlice("monitors"),
		CameraDevice:    v.GetString("camera-device"),
		LogFile:         v.GetString("log-file"),
	}

	if cfg.MinBrightness < 0 || cfg.MinBrightness > 1 {
		return nil, fmt.Errorf("min-brightness must be between 0.0 and 1.0, got %v", cfg.MinBrightness)
	}

	return cfg, nil
}
