// Package astro approximates lunar phase data from a calendar date.
//
// The model is a simple periodic approximation around a fixed new moon and is
// not suitable for navigation.
package astro

import (
	"math"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// LunarCycle is the synodic month in days
const LunarCycle = 29.53059

const secondsPerDay = 24 * 60 * 60

// epoch is a known new moon (January 29, 2025)
var epoch = time.Date(2025, time.January, 29, 0, 0, 0, 0, time.UTC)

// phaseBounds are exclusive upper bounds on age for each phase. Ages at or
// past the last bound wrap back to new.
var phaseBounds = []struct {
	maxAge float64
	phase  models.MoonPhase
}{
	{1.84566, models.MoonNew},
	{5.53699, models.MoonWaxingCrescent},
	{9.22831, models.MoonFirstQuarter},
	{12.91963, models.MoonWaxingGibbous},
	{16.61096, models.MoonFull},
	{20.30228, models.MoonWaningGibbous},
	{23.99361, models.MoonLastQuarter},
	{27.68493, models.MoonWaningCrescent},
}

// Calculate returns moon data for the calendar date of t. Time of day is ignored.
func Calculate(t time.Time) models.MoonData {
	age := Age(t)

	return models.MoonData{
		Phase:        PhaseForAge(age),
		Illumination: int(math.Round(math.Abs(math.Cos(age/LunarCycle*2*math.Pi)) * 100)),
		Age:          math.Round(age*10) / 10,
		Rise:         approxClock(t, 6, age),
		Set:          approxClock(t, 18, age),
	}
}

// Age returns days since the last new moon for the calendar date of t, in [0, LunarCycle)
func Age(t time.Time) float64 {
	civil := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	// Unix seconds rather than Sub: a Duration saturates about 292 years out
	days := float64((civil.Unix() - epoch.Unix()) / secondsPerDay)

	age := math.Mod(days, LunarCycle)
	if age < 0 {
		age += LunarCycle
	}
	return age
}

// PhaseForAge buckets a moon age into a named phase
func PhaseForAge(age float64) models.MoonPhase {
	for _, b := range phaseBounds {
		if age < b.maxAge {
			return b.phase
		}
	}
	return models.MoonNew
}

// approxClock places a rise/set estimate on t's date. Hours past 23 roll into
// the following day.
func approxClock(t time.Time, baseHour int, age float64) time.Time {
	offset := age * 0.8
	hour := baseHour + int(math.Floor(offset))
	minute := int(math.Floor(math.Mod(offset, 1) * 60))
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// Icon returns the moon glyph for a phase
func Icon(phase models.MoonPhase) string {
	switch phase {
	case models.MoonNew:
		return "🌑"
	case models.MoonWaxingCrescent:
		return "🌒"
	case models.MoonFirstQuarter:
		return "🌓"
	case models.MoonWaxingGibbous:
		return "🌔"
	case models.MoonFull:
		return "🌕"
	case models.MoonWaningGibbous:
		return "🌖"
	case models.MoonLastQuarter:
		return "🌗"
	case models.MoonWaningCrescent:
		return "🌘"
	}
	return "🌙"
}
