package models

import "fmt"

// TemperatureUnit is the user's display preference. Values are stored in Celsius.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// ParseTemperatureUnit accepts "celsius"/"c" and "fahrenheit"/"f"
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch s {
	case "celsius", "c", "C":
		return Celsius, nil
	case "fahrenheit", "f", "F":
		return Fahrenheit, nil
	}
	return "", fmt.Errorf("unknown temperature unit %q", s)
}

// Toggle returns the other unit
func (u TemperatureUnit) Toggle() TemperatureUnit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// ForecastView selects which forecast collection is displayed
type ForecastView string

const (
	ViewHourly   ForecastView = "hourly"
	ViewThreeDay ForecastView = "three-day"
	ViewSevenDay ForecastView = "seven-day"
)

// ParseForecastView validates a view name
func ParseForecastView(s string) (ForecastView, error) {
	switch ForecastView(s) {
	case ViewHourly, ViewThreeDay, ViewSevenDay:
		return ForecastView(s), nil
	}
	return "", fmt.Errorf("unknown forecast view %q", s)
}

// Next cycles hourly -> three-day -> seven-day -> hourly
func (v ForecastView) Next() ForecastView {
	switch v {
	case ViewHourly:
		return ViewThreeDay
	case ViewThreeDay:
		return ViewSevenDay
	}
	return ViewHourly
}
