package ambient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rcarver/lux/internal/models"
)

// ErrMissingAPIKey is returned when the weather fallback is reached
// without a configured service credential. It is fatal to the run.
var ErrMissingAPIKey = errors.New("weather API key is required when no webcam is available")

type weatherService interface {
	FetchLocation(ctx context.Context) (models.Location, error)
	FetchCurrent(ctx context.Context, loc models.Location, apiKey string) (models.WeatherSnapshot, error)
}

// WeatherEstimator models outside brightness from sunrise/sunset times
// and cloud coverage reported by a weather service for the machine's
// IP-derived location.
type WeatherEstimator struct {
	logger        *log.Logger
	service       weatherService
	apiKey        string
	minBrightness float64
}

func NewWeatherEstimator(logger *log.Logger, service weatherService, apiKey string, minBrightness float64) *WeatherEstimator {
	return &WeatherEstimator{logger: logger, service: service, apiKey: apiKey, minBrightness: minBrightness}
}

func (e *WeatherEstimator) Name() string {
	return "weather"
}

func (e *WeatherEstimator) Estimate(ctx context.Context, now time.Time) (float64, error) {

	if e.apiKey == "" {
		return 0, ErrMissingAPIKey
	}

	location, err := e.service.FetchLocation(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching location: %w", err)
	}
	e.logger.Debug("resolved location", "lat", location.Latitude, "lon", location.Longitude)

	snapshot, err := e.service.FetchCurrent(ctx, location, e.apiKey)
	if err != nil {
		return 0, fmt.Errorf("fetching weather: %w", err)
	}
	e.logger.Debug("fetched weather",
		"sunrise", snapshot.Sunrise.Local().Format("15:04"),
		"sunset", snapshot.Sunset.Local().Format("15:04"),
		"cloudCoverage", snapshot.CloudCoverage,
	)

	return BrightnessFromWeather(snapshot, now, e.minBrightness), nil
}

// BrightnessFromWeather models daylight as a triangular arc peaking at
// solar noon, attenuated by cloud coverage. Outside daylight hours the
// result is exactly minBrightness.
func BrightnessFromWeather(snapshot models.WeatherSnapshot, now time.Time, minBrightness float64) float64 {

	if now.Before(snapshot.Sunrise) || now.After(snapshot.Sunset) {
		return minBrightness
	}

	dayLength := snapshot.Sunset.Sub(snapshot.Sunrise).Seconds()
	if dayLength <= 0 {
		return minBrightness
	}

	fractionOfDay := now.Sub(snapshot.Sunrise).Seconds() / dayLength
	if fractionOfDay < 0 {
		fractionOfDay = 0
	}
	if fractionOfDay > 1 {
		fractionOfDay = 1
	}

	middayBump := fractionOfDay * 2
	if fractionOfDay > 0.5 {
		middayBump = (1 - fractionOfDay) * 2
	}

	cloudFactor := 1 - snapshot.CloudCoverage/100
	outside := middayBump * cloudFactor

	return minBrightness + outside*(1-minBrightness)
}
