package openmeteo

import (
	"fmt"
	"time"
)

// ForecastResponse is the /v1/forecast payload. Slots the provider may
// return as null are decoded as pointers.
type ForecastResponse struct {
	Latitude             float64      `json:"latitude"`
	Longitude            float64      `json:"longitude"`
	Timezone             string       `json:"timezone"`
	TimezoneAbbreviation string       `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int          `json:"utc_offset_seconds"`
	Current              CurrentBlock `json:"current"`
	Hourly               HourlyBlock  `json:"hourly"`
	Daily                DailyBlock   `json:"daily"`
}

// CurrentBlock holds the "current" section
type CurrentBlock struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	IsDay               int     `json:"is_day"`
	Precipitation       float64 `json:"precipitation"`
	Rain                float64 `json:"rain"`
	Showers             float64 `json:"showers"`
	Snowfall            float64 `json:"snowfall"`
	WeatherCode         int     `json:"weather_code"`
	PressureMSL         float64 `json:"pressure_msl"`
	SurfacePressure     float64 `json:"surface_pressure"`
	CloudCover          float64 `json:"cloud_cover"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	WindDirection       float64 `json:"wind_direction_10m"`
	RelativeHumidity    float64 `json:"relative_humidity_2m"`
}

// HourlyBlock holds the parallel hourly arrays
type HourlyBlock struct {
	Time                     []string   `json:"time"`
	Temperature              []float64  `json:"temperature_2m"`
	WeatherCode              []int      `json:"weather_code"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	WindSpeed                []*float64 `json:"wind_speed_10m"`
	Precipitation            []*float64 `json:"precipitation"`
}

// DailyBlock holds the parallel daily arrays
type DailyBlock struct {
	Time                        []string   `json:"time"`
	WeatherCode                 []int      `json:"weather_code"`
	TemperatureMax              []float64  `json:"temperature_2m_max"`
	TemperatureMin              []float64  `json:"temperature_2m_min"`
	Sunrise                     []string   `json:"sunrise"`
	Sunset                      []string   `json:"sunset"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	WindSpeedMax                []float64  `json:"wind_speed_10m_max"`
	WindDirectionDominant       []*float64 `json:"wind_direction_10m_dominant"`
	UVIndexMax                  []*float64 `json:"uv_index_max"`
}

// Validate checks the shape the assembler relies on. Optional arrays may
// be short; the mandatory daily arrays must line up with the time axis.
func (r *ForecastResponse) Validate() error {
	days := len(r.Daily.Time)
	if days == 0 {
		return fmt.Errorf("%w: empty daily time axis", ErrMalformedPayload)
	}

	mandatory := map[string]int{
		"daily.weather_code":       len(r.Daily.WeatherCode),
		"daily.temperature_2m_max": len(r.Daily.TemperatureMax),
		"daily.temperature_2m_min": len(r.Daily.TemperatureMin),
	}
	for name, n := range mandatory {
		if n != days {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrMalformedPayload, name, n, days)
		}
	}

	hours := len(r.Hourly.Time)
	if len(r.Hourly.Temperature) != hours || len(r.Hourly.WeatherCode) != hours {
		return fmt.Errorf("%w: hourly arrays do not match %d time entries", ErrMalformedPayload, hours)
	}

	return nil
}

// Zone returns the fixed zone the provider reported times in
func (r *ForecastResponse) Zone() *time.Location {
	name := r.TimezoneAbbreviation
	if name == "" {
		name = r.Timezone
	}
	return time.FixedZone(name, r.UTCOffsetSeconds)
}

var timeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseLocalTime parses a provider timestamp ("2025-02-03T14:00" or
// "2025-02-03") in the given zone
func ParseLocalTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

// geocodingResponse is the /v1/search payload. "results" is absent when
// nothing matched.
type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}
