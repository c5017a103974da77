package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	currentFields = []string{
		"temperature_2m", "apparent_temperature", "is_day", "precipitation",
		"rain", "showers", "snowfall", "weather_code", "pressure_msl",
		"surface_pressure", "cloud_cover", "wind_speed_10m",
		"wind_direction_10m", "relative_humidity_2m",
	}
	hourlyFields = []string{
		"temperature_2m", "weather_code", "precipitation_probability",
		"wind_speed_10m", "precipitation",
	}
	dailyFields = []string{
		"weather_code", "temperature_2m_max", "temperature_2m_min", "sunrise",
		"sunset", "precipitation_probability_max", "wind_speed_10m_max",
		"wind_direction_10m_dominant", "uv_index_max",
	}
)

// OpenMeteoForecastClient implements ForecastClient using the Open-Meteo API
type OpenMeteoForecastClient struct {
	baseURL      string
	forecastDays int
	http         *doer
}

// NewForecastClient creates a forecast client from opts
func NewForecastClient(opts Options) *OpenMeteoForecastClient {
	opts = opts.withDefaults()
	return &OpenMeteoForecastClient{
		baseURL:      opts.ForecastURL,
		forecastDays: opts.ForecastDays,
		http:         newDoer(opts.Timeout, opts.Retry, opts.UserAgent, opts.Logger),
	}
}

// GetForecast retrieves and validates the forecast for a point
func (c *OpenMeteoForecastClient) GetForecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("current", strings.Join(currentFields, ","))
	params.Add("hourly", strings.Join(hourlyFields, ","))
	params.Add("daily", strings.Join(dailyFields, ","))
	params.Add("timezone", "auto")
	params.Add("forecast_days", strconv.Itoa(c.forecastDays))

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	var resp ForecastResponse
	if err := c.http.getJSON(ctx, requestURL, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	if err := resp.Validate(); err != nil {
		return nil, err
	}

	return &resp, nil
}
