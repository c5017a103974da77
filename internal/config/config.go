// Package config loads weather-terminal settings from the environment.
//
// Values come from the process environment, then an optional .env file
// (which never overrides variables already set), then struct defaults.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Config holds all runtime settings
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"oneof=local dev prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogPath     string `envconfig:"LOG_PATH" default:"data/weather-terminal.log"`

	WeatherAPIURL   string        `envconfig:"WEATHER_API_URL" default:"https://api.open-meteo.com/v1/forecast" validate:"required,url"`
	GeocodingAPIURL string        `envconfig:"GEOCODING_API_URL" default:"https://geocoding-api.open-meteo.com/v1/search" validate:"required,url"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s" validate:"gt=0"`
	HTTPMaxRetries  int           `envconfig:"HTTP_MAX_RETRIES" default:"2" validate:"min=0,max=10"`
	UserAgent       string        `envconfig:"USER_AGENT" default:"WeatherTerminal/1.0"`
	ForecastDays    int           `envconfig:"FORECAST_DAYS" default:"7" validate:"min=1,max=16"`

	DBPath         string        `envconfig:"DB_PATH"`
	DefaultUnit    string        `envconfig:"DEFAULT_UNIT" default:"celsius" validate:"oneof=celsius fahrenheit"`
	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"500ms" validate:"gte=0"`
}

// ErrorType classifies configuration failures
type ErrorType string

const (
	// ErrParsing indicates an environment value could not be parsed
	ErrParsing ErrorType = "PARSING_FAILED"

	// ErrValidation indicates a parsed value is out of range
	ErrValidation ErrorType = "VALIDATION_FAILED"
)

// Error is returned by Load
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Load reads configuration. envFiles are passed to godotenv; with none,
// ./.env is tried. Missing files are not an error.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &Error{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, &Error{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return &cfg, nil
}

// Unit returns the configured default temperature unit
func (c *Config) Unit() models.TemperatureUnit {
	unit, err := models.ParseTemperatureUnit(c.DefaultUnit)
	if err != nil {
		return models.Celsius
	}
	return unit
}

// IsLocal reports whether the app runs in local development mode
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}
