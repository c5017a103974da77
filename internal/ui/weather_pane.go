package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/astro"
	"github.com/ngmaloney/weather-terminal/internal/format"
	"github.com/ngmaloney/weather-terminal/internal/marine"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// renderHeader renders the location title and fetch details
func (m Model) renderHeader() string {
	loc := m.location
	header := titleStyle.Padding(0, 1).Render(fmt.Sprintf("🌤  %s", loc.DisplayName()))

	details := []string{fmt.Sprintf("%.2f, %.2f", loc.Latitude, loc.Longitude)}
	if region, ok := marine.RegionFor(loc.Latitude, loc.Longitude); ok {
		details = append(details, region)
	}
	details = append(details, "Updated "+format.Clock(m.forecast.Current.LastUpdated))

	return header + "\n" + mutedStyle.Padding(0, 1).Render(strings.Join(details, " • "))
}

// renderCurrent renders current conditions
func (m Model) renderCurrent() string {
	c := m.forecast.Current

	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s  %s %s",
		format.ConditionIcon(c.Condition),
		valueStyle.Bold(true).Render(format.Condition(c.Condition)),
		highlightStyle.Render(format.Temperature(c.Temperature, m.unit)),
		mutedStyle.Render("(feels like "+format.Temperature(c.FeelsLike, m.unit)+")")))

	lines = append(lines, fmt.Sprintf("%s %s  %s %s",
		labelStyle.Render("High:"), format.Temperature(c.High, m.unit),
		labelStyle.Render("Low:"), format.Temperature(c.Low, m.unit)))

	lines = append(lines, fmt.Sprintf("%s %.0f%%  %s %s  %s %.0f hPa",
		labelStyle.Render("Humidity:"), c.Humidity,
		labelStyle.Render("Wind:"), format.Wind(c.WindSpeed, c.WindDirection),
		labelStyle.Render("Pressure:"), c.Pressure))

	lines = append(lines, fmt.Sprintf("%s %s  %s %.1f (%s)  %s %.1f mm",
		labelStyle.Render("Visibility:"), format.Visibility(c.Visibility),
		labelStyle.Render("UV:"), c.UVIndex, format.UVDescription(c.UVIndex),
		labelStyle.Render("Precipitation:"), c.Precipitation))

	lines = append(lines, fmt.Sprintf("%s %s  %s %s",
		labelStyle.Render("Sunrise:"), format.Clock(c.Sunrise),
		labelStyle.Render("Sunset:"), format.Clock(c.Sunset)))

	return strings.Join(lines, "\n")
}

var viewTabs = []struct {
	view  models.ForecastView
	label string
}{
	{models.ViewHourly, "1 Hourly"},
	{models.ViewThreeDay, "2 Three Day"},
	{models.ViewSevenDay, "3 Seven Day"},
}

// renderViewTabs renders the forecast view selector
func (m Model) renderViewTabs() string {
	tabs := make([]string, 0, len(viewTabs))
	for _, tab := range viewTabs {
		if tab.view == m.view {
			tabs = append(tabs, activeTitleStyle.Render(tab.label))
		} else {
			tabs = append(tabs, inactiveTitleStyle.Render(tab.label))
		}
	}
	return strings.Join(tabs, " ")
}

// renderForecast renders the collection selected by the current view
func (m Model) renderForecast() string {
	switch m.view {
	case models.ViewHourly:
		return m.renderHourly(m.forecast.Hourly)
	case models.ViewSevenDay:
		return m.renderDaily(m.forecast.Daily)
	default:
		return m.renderDaily(m.forecast.ThreeDay())
	}
}

func (m Model) renderHourly(hours []models.HourForecast) string {
	if len(hours) == 0 {
		return mutedStyle.Render("No hourly forecast available")
	}

	lines := make([]string, 0, len(hours))
	for _, h := range hours {
		lines = append(lines, fmt.Sprintf("  %-6s %s  %-14s %6s  💧 %3.0f%%",
			format.Hour(h.Time),
			format.ConditionIcon(h.Condition),
			format.Condition(h.Condition),
			format.Temperature(h.Temperature, m.unit),
			h.PrecipProbability))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDaily(days []models.DayForecast) string {
	if len(days) == 0 {
		return mutedStyle.Render("No daily forecast available")
	}

	now := m.forecast.Current.LastUpdated
	lines := make([]string, 0, len(days))
	for _, d := range days {
		lines = append(lines, fmt.Sprintf("  %-10s %-11s %s  %-14s %6s / %-6s 💧 %3.0f%%  %s  %s",
			valueStyle.Bold(true).Render(format.Day(d.Date, now)),
			mutedStyle.Render(format.Date(d.Date)),
			format.ConditionIcon(d.Condition),
			format.Condition(d.Condition),
			format.Temperature(d.HighTemp, m.unit),
			format.Temperature(d.LowTemp, m.unit),
			d.PrecipProbability,
			format.Wind(d.WindSpeed, d.WindDirection),
			astro.Icon(d.Moon.Phase)))
	}
	return strings.Join(lines, "\n")
}
