package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rcarver/lux/internal/constants"
	"github.com/rcarver/lux/internal/models"
)

type weatherResponse struct {
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
}

// Client fetches the IP-derived location and the current weather for
// it. Both calls are one-shot GETs against public JSON endpoints.
type Client struct {
	logger      *log.Logger
	httpClient  *http.Client
	locationURL string
	weatherURL  string
}

func NewClient(logger *log.Logger) *Client {
	return &Client{
		logger:      logger,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		locationURL: constants.LocationURL,
		weatherURL:  constants.WeatherURL,
	}
}

func (c *Client) FetchLocation(ctx context.Context) (models.Location, error) {

	var location models.Location
	if err := c.getJSON(ctx, c.locationURL, &location); err != nil {
		return models.Location{}, fmt.Errorf("error reading location: %w", err)
	}

	c.logger.Debug("resolved location from IP", "lat", location.Latitude, "lon", location.Longitude)
	return location, nil
}

func (c *Client) FetchCurrent(ctx context.Context, loc models.Location, apiKey string) (models.WeatherSnapshot, error) {

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	query.Set("appid", apiKey)

	respBody := weatherResponse{}
	if err := c.getJSON(ctx, c.weatherURL+"?"+query.Encode(), &respBody); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("error reading weather: %w", err)
	}

	return models.WeatherSnapshot{
		Sunrise:       time.Unix(respBody.Sys.Sunrise, 0),
		Sunset:        time.Unix(respBody.Sys.Sunset, 0),
		CloudCoverage: respBody.Clouds.All,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}

	return nil
}
