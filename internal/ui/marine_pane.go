package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/astro"
	"github.com/ngmaloney/weather-terminal/internal/format"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// renderMoon renders the moon phase section
func renderMoon(moon models.MoonData) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s  %s",
		astro.Icon(moon.Phase),
		valueStyle.Bold(true).Render(moon.Phase.Label()),
		mutedStyle.Render(fmt.Sprintf("%d%% illuminated • day %.1f of cycle", moon.Illumination, moon.Age))))
	lines = append(lines, fmt.Sprintf("%s %s  %s %s",
		labelStyle.Render("Moonrise:"), format.Clock(moon.Rise),
		labelStyle.Render("Moonset:"), format.Clock(moon.Set)))
	return strings.Join(lines, "\n")
}

// renderMarine renders waves and tides for coastal locations
func (m Model) renderMarine() string {
	md := m.forecast.Current.Marine
	if md == nil {
		return mutedStyle.Render("Marine data is only available for coastal locations")
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("%s %.1f m from %s (%d°) every %.0f s",
		labelStyle.Render("Waves:"),
		md.WaveHeight,
		format.Compass(float64(md.WaveDirection)),
		md.WaveDirection,
		md.WavePeriod))

	if md.WaterTemperature != nil {
		lines = append(lines, fmt.Sprintf("%s %s",
			labelStyle.Render("Water:"),
			format.Temperature(*md.WaterTemperature, m.unit)))
	}

	lines = append(lines, fmt.Sprintf("%s %s %.1f m at %s",
		labelStyle.Render("Tide now:"),
		tideLabel(md.CurrentTide.Type),
		md.CurrentTide.Height,
		format.Clock(md.CurrentTide.Time)))

	if len(md.NextTides) > 0 {
		lines = append(lines, labelStyle.Render("Upcoming tides:"))
		for _, tide := range md.NextTides {
			lines = append(lines, fmt.Sprintf("  %s  %s  %.1f m",
				valueStyle.Render(format.Clock(tide.Time)),
				labelStyle.Width(4).Render(tideLabel(tide.Type)),
				tide.Height))
		}
	}

	return strings.Join(lines, "\n")
}

func tideLabel(t models.TideType) string {
	if t == models.TideHigh {
		return "High"
	}
	return "Low"
}
