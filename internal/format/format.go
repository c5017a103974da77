// Package format renders forecast values as display strings.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// round rounds half up, so -2.5 becomes -2
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// ToUnit converts a Celsius value to unit
func ToUnit(celsius float64, unit models.TemperatureUnit) float64 {
	if unit == models.Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// Temperature formats a Celsius value as "21°C" or "70°F"
func Temperature(celsius float64, unit models.TemperatureUnit) string {
	if unit == models.Fahrenheit {
		return fmt.Sprintf("%d°F", round(ToUnit(celsius, unit)))
	}
	return fmt.Sprintf("%d°C", round(celsius))
}

// Date formats as "Mon, Feb 3"
func Date(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// Day returns "Today", "Tomorrow" or the full weekday name relative to now.
// Dates are compared by calendar day in t's zone.
func Day(t, now time.Time) string {
	now = now.In(t.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, t.Location())

	switch {
	case sameDay(t, today):
		return "Today"
	case sameDay(t, today.AddDate(0, 0, 1)):
		return "Tomorrow"
	}
	return t.Weekday().String()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Hour formats as "3 PM"
func Hour(t time.Time) string {
	return t.Format("3 PM")
}

// Clock formats as "3:04 PM"
func Clock(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("3:04 PM")
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Compass converts degrees to a 16-point compass direction
func Compass(degrees float64) string {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return compassPoints[round(d/22.5)%16]
}

// Wind formats as "WSW 12 km/h"
func Wind(speed, direction float64) string {
	return fmt.Sprintf("%s %d km/h", Compass(direction), round(speed))
}

// Visibility formats meters as kilometers with one decimal
func Visibility(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

// UVDescription buckets a UV index into Low..Extreme
func UVDescription(index float64) string {
	switch {
	case index <= 2:
		return "Low"
	case index <= 5:
		return "Moderate"
	case index <= 7:
		return "High"
	case index <= 10:
		return "Very High"
	}
	return "Extreme"
}

var conditionLabels = map[models.WeatherCondition]string{
	models.ConditionClearDay:          "Clear",
	models.ConditionClearNight:        "Clear",
	models.ConditionPartlyCloudyDay:   "Partly Cloudy",
	models.ConditionPartlyCloudyNight: "Partly Cloudy",
	models.ConditionCloudy:            "Cloudy",
	models.ConditionRain:              "Rain",
	models.ConditionSnow:              "Snow",
	models.ConditionSleet:             "Sleet",
	models.ConditionWind:              "Windy",
	models.ConditionFog:               "Fog",
	models.ConditionThunderstorm:      "Thunderstorm",
}

var conditionIcons = map[models.WeatherCondition]string{
	models.ConditionClearDay:          "☀️",
	models.ConditionClearNight:        "🌙",
	models.ConditionPartlyCloudyDay:   "⛅",
	models.ConditionPartlyCloudyNight: "☁️",
	models.ConditionCloudy:            "☁️",
	models.ConditionRain:              "🌧️",
	models.ConditionSnow:              "❄️",
	models.ConditionSleet:             "🌨️",
	models.ConditionWind:              "💨",
	models.ConditionFog:               "🌫️",
	models.ConditionThunderstorm:      "⛈️",
}

// Condition returns a human label for c
func Condition(c models.WeatherCondition) string {
	if label, ok := conditionLabels[c]; ok {
		return label
	}
	return string(c)
}

// ConditionIcon returns an emoji for c
func ConditionIcon(c models.WeatherCondition) string {
	if icon, ok := conditionIcons[c]; ok {
		return icon
	}
	return "☁️"
}
