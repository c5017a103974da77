package openmeteo

import (
	"context"
	"log/slog"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastDays = 7

	// MinQueryLength is the shortest search query sent to the geocoder
	MinQueryLength = 3
)

// ForecastClient defines the interface for fetching forecasts
type ForecastClient interface {
	// GetForecast retrieves current, hourly and daily data for a point
	GetForecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error)
}

// GeocodingClient defines the interface for searching places by name
type GeocodingClient interface {
	// SearchLocations returns up to five matching places
	SearchLocations(ctx context.Context, query string) ([]models.Location, error)

	// Geocode returns the best match for a query
	Geocode(ctx context.Context, query string) (*models.Location, error)
}

// Options configures both clients
type Options struct {
	ForecastURL  string
	GeocodingURL string
	ForecastDays int
	Timeout      time.Duration
	UserAgent    string
	Retry        RetryPolicy
	Logger       *slog.Logger
}

// DefaultOptions returns the production endpoints and timeouts
func DefaultOptions() Options {
	return Options{
		ForecastURL:  DefaultForecastURL,
		GeocodingURL: DefaultGeocodingURL,
		ForecastDays: DefaultForecastDays,
		Timeout:      30 * time.Second,
		UserAgent:    "WeatherTerminal/1.0",
		Retry:        DefaultRetryPolicy(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ForecastURL == "" {
		o.ForecastURL = def.ForecastURL
	}
	if o.GeocodingURL == "" {
		o.GeocodingURL = def.GeocodingURL
	}
	if o.ForecastDays <= 0 {
		o.ForecastDays = def.ForecastDays
	}
	if o.Timeout <= 0 {
		o.Timeout = def.Timeout
	}
	if o.Retry.MinWait <= 0 || o.Retry.MaxWait <= 0 {
		retries := o.Retry.MaxRetries
		o.Retry = def.Retry
		o.Retry.MaxRetries = retries
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
