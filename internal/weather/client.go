package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/Adiiii-i/travara/internal/models/response_models"
)

const (
	defaultBaseURL = "https://api.openweathermap.org"
	callTimeout    = 5 * time.Second
)

// Client fetches current conditions and a multi-day forecast from
// OpenWeatherMap. Construction always succeeds: a missing credential makes
// every Summary call report absence instead of failing at startup, since
// weather is decoration rather than a load-bearing dependency.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// Option adjusts a Client, mainly for tests.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(apiKey string, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: callTimeout},
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweather",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether a credential is configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

type geocodeEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type currentPayload struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type forecastPayload struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Summary returns the weather for a destination, or nil when the client has
// no credential, the destination cannot be geocoded, or current conditions
// cannot be fetched. A forecast failure degrades gracefully: the summary is
// still returned without it. The date range is accepted for interface parity;
// the free OpenWeather tier only serves current conditions and a five-day
// forecast regardless of the trip window.
func (c *Client) Summary(ctx context.Context, destination string, start, end time.Time) *response_models.WeatherSummary {
	if !c.Enabled() {
		return nil
	}

	var entries []geocodeEntry
	q := url.Values{}
	q.Set("q", destination)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)
	if err := c.getJSON(ctx, "/geo/1.0/direct?"+q.Encode(), &entries); err != nil {
		c.logger.Warn("weather geocoding failed",
			zap.String("destination", destination), zap.Error(err))
		return nil
	}
	if len(entries) == 0 {
		return nil
	}

	coords := url.Values{}
	coords.Set("lat", fmt.Sprintf("%f", entries[0].Lat))
	coords.Set("lon", fmt.Sprintf("%f", entries[0].Lon))
	coords.Set("appid", c.apiKey)
	coords.Set("units", "metric")

	var current currentPayload
	if err := c.getJSON(ctx, "/data/2.5/weather?"+coords.Encode(), &current); err != nil {
		c.logger.Warn("current conditions fetch failed",
			zap.String("destination", destination), zap.Error(err))
		return nil
	}

	summary := &response_models.WeatherSummary{
		Location: destination,
		Current: response_models.CurrentConditions{
			TemperatureC: current.Main.Temp,
			HumidityPct:  current.Main.Humidity,
			WindSpeedMS:  current.Wind.Speed,
		},
	}
	if len(current.Weather) > 0 {
		summary.Current.Description = current.Weather[0].Description
	}

	var forecast forecastPayload
	if err := c.getJSON(ctx, "/data/2.5/forecast?"+coords.Encode(), &forecast); err != nil {
		c.logger.Warn("forecast fetch failed, returning summary without it",
			zap.String("destination", destination), zap.Error(err))
		return summary
	}
	for _, item := range forecast.List {
		entry := response_models.ForecastEntry{
			Time:         time.Unix(item.Dt, 0).UTC(),
			TemperatureC: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			entry.Description = item.Weather[0].Description
		}
		summary.Forecast = append(summary.Forecast, entry)
	}
	return summary
}

// getJSON runs one GET through the circuit breaker and decodes the body.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		return err
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}
