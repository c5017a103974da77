package models

import "time"

// WeatherCondition is the closed set of condition categories shown to the user
type WeatherCondition string

const (
	ConditionClearDay          WeatherCondition = "clear-day"
	ConditionClearNight        WeatherCondition = "clear-night"
	ConditionPartlyCloudyDay   WeatherCondition = "partly-cloudy-day"
	ConditionPartlyCloudyNight WeatherCondition = "partly-cloudy-night"
	ConditionCloudy            WeatherCondition = "cloudy"
	ConditionRain              WeatherCondition = "rain"
	ConditionSnow              WeatherCondition = "snow"
	ConditionSleet             WeatherCondition = "sleet"
	ConditionWind              WeatherCondition = "wind"
	ConditionFog               WeatherCondition = "fog"
	ConditionThunderstorm      WeatherCondition = "thunderstorm"
)

// CurrentWeather represents conditions at the time of the fetch
type CurrentWeather struct {
	Temperature   float64 // Celsius
	FeelsLike     float64 // Celsius
	Condition     WeatherCondition
	Humidity      float64 // percent
	WindSpeed     float64 // km/h
	WindDirection float64 // degrees
	Pressure      float64 // hPa, mean sea level
	Visibility    float64 // meters, estimated from cloud cover
	UVIndex       float64
	Precipitation float64 // mm
	LastUpdated   time.Time
	Sunrise       time.Time
	Sunset        time.Time
	High          float64
	Low           float64

	Moon     MoonData
	Marine   *MarineData
	Activity *ActivityConditions
}

// DayForecast represents one provider day.
// Humidity, Pressure and Visibility are approximations, not daily aggregates.
type DayForecast struct {
	Date              time.Time
	HighTemp          float64
	LowTemp           float64
	Condition         WeatherCondition
	PrecipProbability float64 // percent
	Sunrise           time.Time
	Sunset            time.Time
	WindSpeed         float64 // km/h, daily max
	WindDirection     float64 // degrees, dominant
	Humidity          float64
	Pressure          float64
	UVIndex           float64
	Visibility        float64 // meters

	Moon     MoonData
	Marine   *MarineData
	Activity *ActivityConditions
}

// HourForecast represents a single hourly slot
type HourForecast struct {
	Time              time.Time
	Temperature       float64
	Condition         WeatherCondition
	PrecipProbability float64
	Activity          *ActivityConditions
}

// Forecast is the full set of records produced for one location and fetch
type Forecast struct {
	Location Location
	Current  CurrentWeather
	Daily    []DayForecast
	Hourly   []HourForecast
}

// ThreeDay returns the first three daily records. It shares the backing
// array with Daily.
func (f *Forecast) ThreeDay() []DayForecast {
	if len(f.Daily) < 3 {
		return f.Daily
	}
	return f.Daily[:3]
}
