package models

import "time"

// MoonPhase is one of the eight named lunar phases, in cyclic order
type MoonPhase string

const (
	MoonNew            MoonPhase = "new"
	MoonWaxingCrescent MoonPhase = "waxing-crescent"
	MoonFirstQuarter   MoonPhase = "first-quarter"
	MoonWaxingGibbous  MoonPhase = "waxing-gibbous"
	MoonFull           MoonPhase = "full"
	MoonWaningGibbous  MoonPhase = "waning-gibbous"
	MoonLastQuarter    MoonPhase = "last-quarter"
	MoonWaningCrescent MoonPhase = "waning-crescent"
)

// MoonPhases lists all phases starting at new moon
var MoonPhases = []MoonPhase{
	MoonNew,
	MoonWaxingCrescent,
	MoonFirstQuarter,
	MoonWaxingGibbous,
	MoonFull,
	MoonWaningGibbous,
	MoonLastQuarter,
	MoonWaningCrescent,
}

// Label returns a display name, e.g. "Waxing Crescent"
func (p MoonPhase) Label() string {
	switch p {
	case MoonNew:
		return "New Moon"
	case MoonWaxingCrescent:
		return "Waxing Crescent"
	case MoonFirstQuarter:
		return "First Quarter"
	case MoonWaxingGibbous:
		return "Waxing Gibbous"
	case MoonFull:
		return "Full Moon"
	case MoonWaningGibbous:
		return "Waning Gibbous"
	case MoonLastQuarter:
		return "Last Quarter"
	case MoonWaningCrescent:
		return "Waning Crescent"
	}
	return string(p)
}

// MoonData describes the moon on a given date
type MoonData struct {
	Phase        MoonPhase
	Illumination int     // percent, 0-100
	Age          float64 // days since new moon, one decimal
	Rise         time.Time
	Set          time.Time
}
