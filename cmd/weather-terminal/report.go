package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ngmaloney/weather-terminal/internal/format"
	"github.com/ngmaloney/weather-terminal/internal/marine"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// writeReport renders fc as plain text for --print
func writeReport(w io.Writer, fc *models.Forecast, unit models.TemperatureUnit, view models.ForecastView) error {
	var b strings.Builder
	c := fc.Current
	loc := fc.Location

	fmt.Fprintf(&b, "%s (%.2f, %.2f)", loc.DisplayName(), loc.Latitude, loc.Longitude)
	if region, ok := marine.RegionFor(loc.Latitude, loc.Longitude); ok {
		fmt.Fprintf(&b, " • %s", region)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Now: %s %s (feels like %s) • Wind %s • Humidity %.0f%% • Pressure %.0f hPa\n",
		format.Condition(c.Condition),
		format.Temperature(c.Temperature, unit),
		format.Temperature(c.FeelsLike, unit),
		format.Wind(c.WindSpeed, c.WindDirection),
		c.Humidity,
		c.Pressure)
	fmt.Fprintf(&b, "Sun: %s - %s • Moon: %s, %d%% illuminated\n",
		format.Clock(c.Sunrise), format.Clock(c.Sunset),
		c.Moon.Phase.Label(), c.Moon.Illumination)

	if md := c.Marine; md != nil {
		fmt.Fprintf(&b, "Marine: waves %.1f m from %s every %.0f s",
			md.WaveHeight, format.Compass(float64(md.WaveDirection)), md.WavePeriod)
		if md.WaterTemperature != nil {
			fmt.Fprintf(&b, " • water %s", format.Temperature(*md.WaterTemperature, unit))
		}
		if len(md.NextTides) > 0 {
			next := md.NextTides[0]
			fmt.Fprintf(&b, " • next tide %s %.1f m at %s", next.Type, next.Height, format.Clock(next.Time))
		}
		b.WriteString("\n")
	}

	if a := c.Activity; a != nil {
		fmt.Fprintf(&b, "Activities: fishing %s • surfing %s • boating %s\n",
			a.Fishing.Rating, a.Surfing.Rating, a.Boating.Rating)
	}

	b.WriteString(forecastTable(fc, unit, view))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func forecastTable(fc *models.Forecast, unit models.TemperatureUnit, view models.ForecastView) string {
	t := table.New().Border(lipgloss.NormalBorder())

	if view == models.ViewHourly {
		t.Headers("Hour", "Conditions", "Temp", "Precip")
		for _, h := range fc.Hourly {
			t.Row(format.Hour(h.Time), format.Condition(h.Condition),
				format.Temperature(h.Temperature, unit),
				fmt.Sprintf("%.0f%%", h.PrecipProbability))
		}
		return t.Render()
	}

	days := fc.Daily
	if view == models.ViewThreeDay {
		days = fc.ThreeDay()
	}

	t.Headers("Day", "Date", "Conditions", "High", "Low", "Precip", "Wind", "Moon")
	for _, d := range days {
		t.Row(format.Day(d.Date, fc.Current.LastUpdated), format.Date(d.Date),
			format.Condition(d.Condition),
			format.Temperature(d.HighTemp, unit),
			format.Temperature(d.LowTemp, unit),
			fmt.Sprintf("%.0f%%", d.PrecipProbability),
			format.Wind(d.WindSpeed, d.WindDirection),
			d.Moon.Phase.Label())
	}
	return t.Render()
}
