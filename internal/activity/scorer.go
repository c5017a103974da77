// Package activity rates fishing, surfing and boating conditions.
//
// Each activity starts from a base rating and applies a fixed sequence of
// rules. Later rules read the rating left by earlier ones, so the order of
// the checks below is part of the contract.
package activity

import (
	"fmt"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Inputs are the observations an activity score is computed from
type Inputs struct {
	WindSpeed     float64 // km/h
	Precipitation float64 // mm
	Pressure      float64 // hPa, mean sea level
	MoonPhase     models.MoonPhase
	Marine        *models.MarineData // nil for non-coastal locations
}

// Score rates every activity independently
func Score(in Inputs) models.ActivityConditions {
	return models.ActivityConditions{
		Fishing: Fishing(in),
		Surfing: Surfing(in),
		Boating: Boating(in),
	}
}

// Fishing favours new and full moons, steady pressure and light rain
func Fishing(in Inputs) models.ActivityScore {
	s := newScore(models.RatingFair)

	switch in.MoonPhase {
	case models.MoonNew, models.MoonFull:
		s.add("Optimal moon phase")
		s.set(models.RatingExcellent)
	case models.MoonFirstQuarter, models.MoonLastQuarter:
		s.add("Good moon phase")
		s.upgradeFrom(models.RatingFair)
	}

	if in.Pressure > 1020 {
		s.add("High pressure - stable conditions")
	} else if in.Pressure < 1000 {
		s.add("Low pressure - fish may be less active")
		s.downgradeFrom(models.RatingExcellent)
		s.downgradeFrom(models.RatingGood)
	}

	if in.Precipitation > 0 {
		s.add("Light rain can improve fishing")
		s.upgradeFrom(models.RatingFair)
	}

	if in.WindSpeed > 15 {
		s.add("High winds - challenging conditions")
		s.downgradeFrom(models.RatingExcellent)
		s.downgradeFrom(models.RatingGood)
	}

	return s.result()
}

// Surfing needs wave data. Without it the rating stays poor.
func Surfing(in Inputs) models.ActivityScore {
	s := newScore(models.RatingPoor)

	if in.Marine == nil {
		s.add("No wave data available")
		return s.result()
	}

	height := in.Marine.WaveHeight
	switch {
	case height >= 0.5 && height <= 3:
		s.add(fmt.Sprintf("Good wave height: %.1fm", height))
		s.set(models.RatingGood)
	case height > 3:
		s.add(fmt.Sprintf("Large waves: %.1fm - experienced surfers only", height))
		s.set(models.RatingFair)
	default:
		s.add(fmt.Sprintf("Small waves: %.1fm", height))
		s.set(models.RatingPoor)
	}

	if in.WindSpeed < 10 {
		s.add("Light winds - clean conditions")
		s.upgradeFrom(models.RatingGood)
	} else if in.WindSpeed > 20 {
		s.add("Strong winds - choppy conditions")
		s.downgradeFrom(models.RatingGood)
	}

	return s.result()
}

// Boating is driven mostly by wind. The wind checks are independent, so a
// very strong wind records both wind factors and ends at poor.
// Large waves step down twice in a row (excellent to good, then good to
// fair), so a calm day with large waves ends at fair, not good. Keep the
// chain; it is the intended rating.
func Boating(in Inputs) models.ActivityScore {
	s := newScore(models.RatingGood)

	if in.WindSpeed < 5 {
		s.add("Calm winds - ideal for boating")
		s.set(models.RatingExcellent)
	}
	if in.WindSpeed > 15 {
		s.add("Strong winds - use caution")
		s.set(models.RatingFair)
	}
	if in.WindSpeed > 25 {
		s.add("Very strong winds - not recommended")
		s.set(models.RatingPoor)
	}

	if in.Marine != nil && in.Marine.WaveHeight > 2 {
		s.add("Large waves - rough seas")
		s.downgradeFrom(models.RatingExcellent)
		s.downgradeFrom(models.RatingGood)
	} else if in.Marine == nil {
		s.add("No marine data - check local sea conditions")
	}

	if in.Precipitation > 0 {
		s.add("Precipitation - reduced visibility")
		s.downgradeFrom(models.RatingExcellent)
	}

	return s.result()
}

// score accumulates a rating and its factors while rules are applied
type score struct {
	rating  models.ActivityRating
	factors []string
}

func newScore(start models.ActivityRating) *score {
	return &score{rating: start, factors: []string{}}
}

func (s *score) add(factor string) {
	s.factors = append(s.factors, factor)
}

func (s *score) set(r models.ActivityRating) {
	s.rating = r
}

// upgradeFrom moves up one step only when the rating is exactly from
func (s *score) upgradeFrom(from models.ActivityRating) {
	if s.rating == from {
		s.rating = s.rating.Up()
	}
}

// downgradeFrom moves down one step only when the rating is exactly from
func (s *score) downgradeFrom(from models.ActivityRating) {
	if s.rating == from {
		s.rating = s.rating.Down()
	}
}

func (s *score) result() models.ActivityScore {
	return models.ActivityScore{Rating: s.rating, Factors: s.factors}
}
