package forecast

import (
	"time"

	"github.com/ngmaloney/weather-terminal/internal/activity"
	"github.com/ngmaloney/weather-terminal/internal/astro"
	"github.com/ngmaloney/weather-terminal/internal/marine"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
)

const (
	// HourlyLimit is the number of hourly slots kept
	HourlyLimit = 24

	dailyHumidity   = 70.0    // percent, no daily aggregate available
	dailyVisibility = 10000.0 // meters, no daily aggregate available
	clearVisibility = 10000.0 // meters at zero cloud cover
	dayStartHour    = 6
	dayEndHour      = 18
)

// Assembler turns a provider response into the displayed forecast records
type Assembler struct {
	Synth *marine.Synthesizer
}

// NewAssembler creates an assembler with a runtime-seeded synthesizer
func NewAssembler() *Assembler {
	return &Assembler{Synth: marine.NewSynthesizer()}
}

// Assemble builds current, daily and hourly records for loc. It never
// fails: missing or short arrays degrade field by field.
func (a *Assembler) Assemble(resp *openmeteo.ForecastResponse, loc models.Location, now time.Time) *models.Forecast {
	zone := resp.Zone()
	coastal := marine.IsCoastal(loc.Latitude, loc.Longitude)

	current := a.current(resp, loc, coastal, now, zone)

	daily := make([]models.DayForecast, 0, len(resp.Daily.Time))
	for i := range resp.Daily.Time {
		daily = append(daily, a.day(resp, i, loc, coastal, current, now, zone))
	}

	hours := min(len(resp.Hourly.Time), HourlyLimit)
	hourly := make([]models.HourForecast, 0, hours)
	for i := 0; i < hours; i++ {
		hourly = append(hourly, hour(resp, i, current, zone))
	}

	return &models.Forecast{
		Location: loc,
		Current:  current,
		Daily:    daily,
		Hourly:   hourly,
	}
}

func (a *Assembler) current(resp *openmeteo.ForecastResponse, loc models.Location, coastal bool, now time.Time, zone *time.Location) models.CurrentWeather {
	c := resp.Current
	moon := astro.Calculate(now.In(zone))

	var marineData *models.MarineData
	if coastal {
		md := a.Synth.Generate(loc.Latitude, loc.Longitude, now.In(zone), now)
		marineData = &md
	}

	conditions := activity.Score(activity.Inputs{
		WindSpeed:     c.WindSpeed,
		Precipitation: c.Precipitation,
		Pressure:      c.PressureMSL,
		MoonPhase:     moon.Phase,
		Marine:        marineData,
	})

	return models.CurrentWeather{
		Temperature:   c.Temperature,
		FeelsLike:     c.ApparentTemperature,
		Condition:     MapWeatherCode(c.WeatherCode, c.IsDay == 1),
		Humidity:      c.RelativeHumidity,
		WindSpeed:     c.WindSpeed,
		WindDirection: c.WindDirection,
		Pressure:      c.PressureMSL,
		Visibility:    clearVisibility * (1 - c.CloudCover/100),
		UVIndex:       optional(resp.Daily.UVIndexMax, 0, 0),
		Precipitation: c.Precipitation,
		LastUpdated:   now,
		Sunrise:       parseAt(resp.Daily.Sunrise, 0, zone),
		Sunset:        parseAt(resp.Daily.Sunset, 0, zone),
		High:          at(resp.Daily.TemperatureMax, 0),
		Low:           at(resp.Daily.TemperatureMin, 0),
		Moon:          moon,
		Marine:        marineData,
		Activity:      &conditions,
	}
}

func (a *Assembler) day(resp *openmeteo.ForecastResponse, i int, loc models.Location, coastal bool, current models.CurrentWeather, now time.Time, zone *time.Location) models.DayForecast {
	d := resp.Daily
	date := parseAt(d.Time, i, zone)
	moon := astro.Calculate(date)

	var marineData *models.MarineData
	if coastal {
		md := a.Synth.Generate(loc.Latitude, loc.Longitude, date, now)
		marineData = &md
	}

	precipProbability := optional(d.PrecipitationProbabilityMax, i, 0)
	windSpeed := at(d.WindSpeedMax, i)

	conditions := activity.Score(activity.Inputs{
		WindSpeed:     windSpeed,
		Precipitation: precipProbability,
		Pressure:      current.Pressure,
		MoonPhase:     moon.Phase,
		Marine:        marineData,
	})

	return models.DayForecast{
		Date:              date,
		HighTemp:          at(d.TemperatureMax, i),
		LowTemp:           at(d.TemperatureMin, i),
		Condition:         MapWeatherCode(atInt(d.WeatherCode, i, -1), true),
		PrecipProbability: precipProbability,
		Sunrise:           parseAt(d.Sunrise, i, zone),
		Sunset:            parseAt(d.Sunset, i, zone),
		WindSpeed:         windSpeed,
		WindDirection:     optional(d.WindDirectionDominant, i, current.WindDirection),
		Humidity:          dailyHumidity,
		Pressure:          current.Pressure,
		UVIndex:           optional(d.UVIndexMax, i, 0),
		Visibility:        dailyVisibility,
		Moon:              moon,
		Marine:            marineData,
		Activity:          &conditions,
	}
}

func hour(resp *openmeteo.ForecastResponse, i int, current models.CurrentWeather, zone *time.Location) models.HourForecast {
	h := resp.Hourly
	t := parseAt(h.Time, i, zone)
	moon := astro.Calculate(t)

	conditions := activity.Score(activity.Inputs{
		WindSpeed:     optional(h.WindSpeed, i, current.WindSpeed),
		Precipitation: optional(h.Precipitation, i, 0),
		Pressure:      current.Pressure,
		MoonPhase:     moon.Phase,
		Marine:        current.Marine,
	})

	isDay := t.Hour() >= dayStartHour && t.Hour() <= dayEndHour

	return models.HourForecast{
		Time:              t,
		Temperature:       at(h.Temperature, i),
		Condition:         MapWeatherCode(atInt(h.WeatherCode, i, -1), isDay),
		PrecipProbability: optional(h.PrecipitationProbability, i, 0),
		Activity:          &conditions,
	}
}

func at(values []float64, i int) float64 {
	if i < 0 || i >= len(values) {
		return 0
	}
	return values[i]
}

func atInt(values []int, i int, fallback int) int {
	if i < 0 || i >= len(values) {
		return fallback
	}
	return values[i]
}

// optional returns values[i], or fallback when the slot is missing or null
func optional(values []*float64, i int, fallback float64) float64 {
	if i < 0 || i >= len(values) || values[i] == nil {
		return fallback
	}
	return *values[i]
}

// parseAt parses values[i] in zone; missing or malformed entries are zero times
func parseAt(values []string, i int, zone *time.Location) time.Time {
	if i < 0 || i >= len(values) {
		return time.Time{}
	}
	t, err := openmeteo.ParseLocalTime(values[i], zone)
	if err != nil {
		return time.Time{}
	}
	return t
}
