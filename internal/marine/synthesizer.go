package marine

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	tidesPerDay   = 4
	tideInterval  = 6*time.Hour + 15*time.Minute
	maxNextTides  = 3
	tideMeanLevel = 1.5
	tideAmplitude = 1.2
)

// Synthesizer produces approximate marine data for coastal points.
// Wave and water temperature values are random draws, so repeated calls
// with the same input differ unless the synthesizer is seeded.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer backed by a randomly seeded source
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSynthesizer creates a synthesizer whose output is repeatable for a seed
func NewSeededSynthesizer(seed uint64) *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate builds marine data for the given date. now selects the current and
// upcoming tides and may fall on a different day than date.
// Callers are expected to check IsCoastal first.
func (s *Synthesizer) Generate(lat, lon float64, date, now time.Time) models.MarineData {
	tides := Tides(date)

	current := tides[0]
	best := absDuration(tides[0].Time.Sub(now))
	for _, tide := range tides[1:] {
		if d := absDuration(tide.Time.Sub(now)); d < best {
			best = d
			current = tide
		}
	}

	next := make([]models.TideInfo, 0, maxNextTides)
	for _, tide := range tides {
		if tide.Time.After(now) && len(next) < maxNextTides {
			next = append(next, tide)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	md := models.MarineData{
		WaveHeight:    0.5 + s.rng.Float64()*2,
		WaveDirection: s.rng.IntN(360),
		WavePeriod:    8 + s.rng.Float64()*6,
		CurrentTide:   current,
		NextTides:     next,
	}
	waterTemp := 15 + s.rng.Float64()*15
	md.WaterTemperature = &waterTemp
	return md
}

// Tides returns the synthetic tide table for the calendar date of date, in
// date's location. Events start at midnight and alternate high and low.
func Tides(date time.Time) []models.TideInfo {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	tides := make([]models.TideInfo, 0, tidesPerDay)
	for i := 0; i < tidesPerDay; i++ {
		tideType := models.TideHigh
		if i%2 == 1 {
			tideType = models.TideLow
		}
		tides = append(tides, models.TideInfo{
			Time:   midnight.Add(time.Duration(i) * tideInterval),
			Height: tideMeanLevel + tideAmplitude*math.Sin(float64(i)*math.Pi/2),
			Type:   tideType,
		})
	}
	return tides
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
