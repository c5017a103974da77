package forecast

import "github.com/ngmaloney/weather-terminal/internal/models"

// conditionPair holds the day and night renderings of a WMO code
type conditionPair struct {
	day   models.WeatherCondition
	night models.WeatherCondition
}

func same(c models.WeatherCondition) conditionPair {
	return conditionPair{day: c, night: c}
}

// wmoConditions maps WMO weather interpretation codes to conditions.
// See https://open-meteo.com/en/docs
var wmoConditions = map[int]conditionPair{
	0: {day: models.ConditionClearDay, night: models.ConditionClearNight},
	1: {day: models.ConditionPartlyCloudyDay, night: models.ConditionPartlyCloudyNight},
	2: {day: models.ConditionPartlyCloudyDay, night: models.ConditionPartlyCloudyNight},
	3: same(models.ConditionCloudy),

	45: same(models.ConditionFog),
	48: same(models.ConditionFog),

	// Drizzle, freezing drizzle, rain, freezing rain and showers
	51: same(models.ConditionRain),
	53: same(models.ConditionRain),
	55: same(models.ConditionRain),
	56: same(models.ConditionRain),
	57: same(models.ConditionRain),
	61: same(models.ConditionRain),
	63: same(models.ConditionRain),
	65: same(models.ConditionRain),
	66: same(models.ConditionRain),
	67: same(models.ConditionRain),
	80: same(models.ConditionRain),
	81: same(models.ConditionRain),
	82: same(models.ConditionRain),

	71: same(models.ConditionSnow),
	73: same(models.ConditionSnow),
	75: same(models.ConditionSnow),
	77: same(models.ConditionSnow),
	85: same(models.ConditionSnow),
	86: same(models.ConditionSnow),

	95: same(models.ConditionThunderstorm),
	96: same(models.ConditionThunderstorm),
	99: same(models.ConditionThunderstorm),
}

// MapWeatherCode converts a WMO code to a condition. Unknown codes are cloudy.
func MapWeatherCode(code int, isDay bool) models.WeatherCondition {
	pair, ok := wmoConditions[code]
	if !ok {
		return models.ConditionCloudy
	}
	if isDay {
		return pair.day
	}
	return pair.night
}
