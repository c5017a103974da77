package models

import "time"

// TideType represents whether a tide is high or low
type TideType string

const (
	TideHigh TideType = "high"
	TideLow  TideType = "low"
)

// TideInfo represents a single high or low tide occurrence
type TideInfo struct {
	Time   time.Time
	Height float64 // meters
	Type   TideType
}

// MarineData contains wave and tide conditions for a coastal point.
// A nil *MarineData means marine activities do not apply to the location.
type MarineData struct {
	WaveHeight       float64 // meters
	WaveDirection    int     // degrees, 0-359
	WavePeriod       float64 // seconds
	CurrentTide      TideInfo
	NextTides        []TideInfo // Ordered by time, future only
	WaterTemperature *float64   // Celsius
}

// TidesForDay returns the tides (current and upcoming) that fall on the given date
func (md *MarineData) TidesForDay(date time.Time) []TideInfo {
	var events []TideInfo
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	candidates := append([]TideInfo{md.CurrentTide}, md.NextTides...)
	seen := make(map[time.Time]bool, len(candidates))
	for _, event := range candidates {
		if seen[event.Time] {
			continue
		}
		seen[event.Time] = true
		if !event.Time.Before(startOfDay) && event.Time.Before(endOfDay) {
			events = append(events, event)
		}
	}
	return events
}
