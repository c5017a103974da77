package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BFFF") // Deep sky blue
	colorSecondary = lipgloss.Color("#87CEEB") // Sky blue
	colorDanger    = lipgloss.Color("#FF6B6B") // Red for poor ratings and errors
	colorWarning   = lipgloss.Color("#FFD93D") // Yellow for fair ratings
	colorSuccess   = lipgloss.Color("#6BCF7F") // Green
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	activeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary).
				Padding(0, 1)

	inactiveTitleStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	// Activity rating styles
	ratingExcellentStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	ratingGoodStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	ratingFairStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	ratingPoorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(64)
)

// ratingStyle returns the style for an activity rating
func ratingStyle(rating models.ActivityRating) lipgloss.Style {
	switch rating {
	case models.RatingExcellent:
		return ratingExcellentStyle
	case models.RatingGood:
		return ratingGoodStyle
	case models.RatingFair:
		return ratingFairStyle
	case models.RatingPoor:
		return ratingPoorStyle
	default:
		return valueStyle
	}
}
