package ui

import (
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Message types for async operations

// searchTickMsg fires when the debounce delay for search seq has elapsed
type searchTickMsg struct {
	seq int
}

// searchResultsMsg is sent when a location search completes
type searchResultsMsg struct {
	seq       int
	query     string
	locations []models.Location
	err       error
}

// forecastFetchedMsg is sent when a forecast has been fetched and assembled
type forecastFetchedMsg struct {
	seq      int
	location models.Location
	forecast *models.Forecast
	err      error
}

// preferenceSavedMsg is sent after a preference write
type preferenceSavedMsg struct {
	key string
	err error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}
