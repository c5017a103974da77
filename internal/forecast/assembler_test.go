package forecast

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/weather-terminal/internal/marine"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
)

var (
	est     = time.FixedZone("EST", -5*3600)
	fetchAt = time.Date(2025, 2, 3, 9, 0, 0, 0, est)

	newYork = models.Location{Name: "New York", Country: "United States", Latitude: 40.7128, Longitude: -74.006}
	denver  = models.Location{Name: "Denver", Country: "United States", Latitude: 39.7392, Longitude: -104.9903}
)

func loadResponse(t *testing.T) *openmeteo.ForecastResponse {
	t.Helper()
	data, err := os.ReadFile("../../testdata/openmeteo_forecast.json")
	require.NoError(t, err)

	var resp openmeteo.ForecastResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.NoError(t, resp.Validate())
	return &resp
}

func seededAssembler() *Assembler {
	return &Assembler{Synth: marine.NewSeededSynthesizer(42)}
}

func f(v float64) *float64 { return &v }

func TestAssemble_SevenDays(t *testing.T) {
	fc := seededAssembler().Assemble(loadResponse(t), newYork, fetchAt)

	require.Len(t, fc.Daily, 7)
	three := fc.ThreeDay()
	require.Len(t, three, 3)
	for i := range three {
		assert.Same(t, &fc.Daily[i], &three[i], "three-day record %d should be the daily record", i)
	}

	assert.Len(t, fc.Hourly, HourlyLimit)
	assert.Equal(t, newYork, fc.Location)
}

func TestAssemble_Current(t *testing.T) {
	fc := seededAssembler().Assemble(loadResponse(t), newYork, fetchAt)
	c := fc.Current

	assert.Equal(t, models.ConditionPartlyCloudyDay, c.Condition)
	assert.InDelta(t, 3.4, c.Temperature, 1e-9)
	assert.InDelta(t, -0.8, c.FeelsLike, 1e-9)
	assert.InDelta(t, 58, c.Humidity, 1e-9)
	assert.InDelta(t, 6000, c.Visibility, 1e-9)
	assert.InDelta(t, 2.1, c.UVIndex, 1e-9)
	assert.InDelta(t, 5.1, c.High, 1e-9)
	assert.InDelta(t, -2.0, c.Low, 1e-9)
	assert.True(t, c.Sunrise.Equal(time.Date(2025, 2, 3, 7, 0, 0, 0, est)))
	assert.True(t, c.Sunset.Equal(time.Date(2025, 2, 3, 17, 20, 0, 0, est)))
	assert.Equal(t, fetchAt, c.LastUpdated)

	assert.Equal(t, models.MoonWaxingCrescent, c.Moon.Phase)

	require.NotNil(t, c.Marine, "New York is coastal")
	assert.True(t, c.Marine.CurrentTide.Time.Equal(time.Date(2025, 2, 3, 6, 15, 0, 0, est)))
	for _, tide := range c.Marine.NextTides {
		assert.True(t, tide.Time.After(fetchAt))
	}

	require.NotNil(t, c.Activity)
	assert.Equal(t, models.RatingFair, c.Activity.Fishing.Rating)
	assert.Contains(t, c.Activity.Fishing.Factors, "High pressure - stable conditions")
}

func TestAssemble_Daily(t *testing.T) {
	fc := seededAssembler().Assemble(loadResponse(t), newYork, fetchAt)

	day := fc.Daily[2]
	assert.True(t, day.Date.Equal(time.Date(2025, 2, 5, 0, 0, 0, 0, est)))
	assert.Equal(t, models.ConditionRain, day.Condition)
	assert.InDelta(t, 85, day.PrecipProbability, 1e-9)
	assert.InDelta(t, 250, day.WindDirection, 1e-9, "null dominant direction falls back to current")
	assert.InDelta(t, 70, day.Humidity, 1e-9)
	assert.InDelta(t, 1024.3, day.Pressure, 1e-9)
	assert.InDelta(t, 10000, day.Visibility, 1e-9)
	assert.InDelta(t, 26.4, day.WindSpeed, 1e-9)
	require.NotNil(t, day.Marine)
	assert.Equal(t, 5, day.Marine.CurrentTide.Time.Day(), "tides are laid out on the day's date")
	assert.Contains(t, day.Activity.Fishing.Factors, "High winds - challenging conditions")

	assert.Equal(t, 0.0, fc.Daily[3].UVIndex, "null UV defaults to 0")
	assert.Equal(t, 0.0, fc.Daily[5].PrecipProbability, "null probability defaults to 0")
	assert.Equal(t, models.ConditionThunderstorm, fc.Daily[4].Condition)
	assert.Equal(t, models.MoonFirstQuarter, fc.Daily[3].Moon.Phase)

	for i, d := range fc.Daily {
		assert.Equal(t, fmt.Sprintf("2025-02-%02d", 3+i), d.Date.Format("2006-01-02"))
		assert.NotNil(t, d.Activity)
	}
}

func TestAssemble_Hourly(t *testing.T) {
	fc := seededAssembler().Assemble(loadResponse(t), newYork, fetchAt)

	tests := []struct {
		hour int
		want models.WeatherCondition
	}{
		{0, models.ConditionPartlyCloudyNight},
		{5, models.ConditionClearNight},
		{6, models.ConditionPartlyCloudyDay},
		{13, models.ConditionClearDay},
		{18, models.ConditionPartlyCloudyDay},
		{19, models.ConditionClearNight},
	}
	for _, tt := range tests {
		got := fc.Hourly[tt.hour]
		assert.Equal(t, tt.hour, got.Time.Hour())
		assert.Equal(t, tt.want, got.Condition, "hour %d", tt.hour)
	}

	assert.Equal(t, 0.0, fc.Hourly[3].PrecipProbability, "null probability defaults to 0")
	assert.InDelta(t, 30, fc.Hourly[10].PrecipProbability, 1e-9)

	// Hourly surf scores use the current marine snapshot.
	wave := fmt.Sprintf("%.1fm", fc.Current.Marine.WaveHeight)
	for _, h := range fc.Hourly {
		require.NotNil(t, h.Activity)
		require.NotEmpty(t, h.Activity.Surfing.Factors)
		assert.Contains(t, h.Activity.Surfing.Factors[0], wave)
	}
}

func TestAssemble_Inland(t *testing.T) {
	fc := seededAssembler().Assemble(loadResponse(t), denver, fetchAt)

	assert.Nil(t, fc.Current.Marine)
	assert.Equal(t, []string{"No wave data available"}, fc.Current.Activity.Surfing.Factors)
	assert.Equal(t, models.RatingPoor, fc.Current.Activity.Surfing.Rating)
	for _, d := range fc.Daily {
		assert.Nil(t, d.Marine)
	}
	for _, h := range fc.Hourly {
		assert.Equal(t, models.RatingPoor, h.Activity.Surfing.Rating)
	}
}

func TestAssemble_SeededIsRepeatable(t *testing.T) {
	resp := loadResponse(t)

	a := seededAssembler().Assemble(resp, newYork, fetchAt)
	b := seededAssembler().Assemble(resp, newYork, fetchAt)

	assert.Equal(t, a, b)
}

func TestAssemble_ShortArraysDegrade(t *testing.T) {
	resp := &openmeteo.ForecastResponse{
		TimezoneAbbreviation: "GMT",
		Current: openmeteo.CurrentBlock{
			WeatherCode: 3,
			PressureMSL: 1010,
			WindSpeed:   30,
		},
		Daily: openmeteo.DailyBlock{
			Time:                  []string{"2025-02-03", "not-a-date"},
			WeatherCode:           []int{0, 9999},
			TemperatureMax:        []float64{10, 11},
			TemperatureMin:        []float64{1, 2},
			WindDirectionDominant: []*float64{f(90)},
		},
		Hourly: openmeteo.HourlyBlock{
			Time:        []string{"2025-02-03T00:00", "2025-02-03T01:00"},
			Temperature: []float64{4, 5},
			WeatherCode: []int{0, 0},
			WindSpeed:   []*float64{nil, f(2)},
		},
	}
	now := time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC)

	var fc *models.Forecast
	require.NotPanics(t, func() {
		fc = seededAssembler().Assemble(resp, denver, now)
	})

	assert.True(t, fc.Current.Sunrise.IsZero())
	assert.Equal(t, 0.0, fc.Current.UVIndex)

	require.Len(t, fc.Daily, 2)
	assert.InDelta(t, 90, fc.Daily[0].WindDirection, 1e-9)
	assert.True(t, fc.Daily[1].Date.IsZero(), "unparsable date degrades to zero time")
	assert.Equal(t, models.ConditionCloudy, fc.Daily[1].Condition)
	assert.Equal(t, 0.0, fc.Daily[1].WindSpeed)

	require.Len(t, fc.Hourly, 2)
	assert.Equal(t, models.RatingPoor, fc.Hourly[0].Activity.Boating.Rating, "null hourly wind falls back to current")
	assert.Contains(t, fc.Hourly[0].Activity.Boating.Factors, "Very strong winds - not recommended")
	assert.Equal(t, models.RatingExcellent, fc.Hourly[1].Activity.Boating.Rating)
}
