package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// renderActivities renders the fishing, surfing and boating ratings
func renderActivities(conditions *models.ActivityConditions) string {
	if conditions == nil {
		return mutedStyle.Render("No activity data available")
	}

	activities := []struct {
		icon  string
		name  string
		score models.ActivityScore
	}{
		{"🎣", "Fishing", conditions.Fishing},
		{"🏄", "Surfing", conditions.Surfing},
		{"⛵", "Boating", conditions.Boating},
	}

	var lines []string
	for _, a := range activities {
		lines = append(lines, fmt.Sprintf("%s %-8s %s",
			a.icon,
			a.name,
			ratingStyle(a.score.Rating).Render(strings.ToUpper(a.score.Rating.String()))))
		for _, factor := range a.score.Factors {
			lines = append(lines, mutedStyle.Render("   • "+factor))
		}
	}

	return strings.Join(lines, "\n")
}
