package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// WeatherService is the subset of weather.Service the UI needs
type WeatherService interface {
	Search(ctx context.Context, query string) ([]models.Location, error)
	Fetch(ctx context.Context, loc models.Location) (*models.Forecast, error)
}

// PreferenceStore persists the user's choices between runs
type PreferenceStore interface {
	SaveLocation(ctx context.Context, loc models.Location) error
	SaveUnit(ctx context.Context, unit models.TemperatureUnit) error
}

const (
	searchTimeout   = 10 * time.Second
	forecastTimeout = 30 * time.Second
	saveTimeout     = 5 * time.Second
)

// debounceSearch schedules a searchTickMsg for seq after delay
func debounceSearch(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

// searchLocations performs the location search in the background
func searchLocations(svc WeatherService, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		locations, err := svc.Search(ctx, query)
		return searchResultsMsg{seq: seq, query: query, locations: locations, err: err}
	}
}

// fetchForecast fetches and assembles the forecast for loc
func fetchForecast(svc WeatherService, seq int, loc models.Location) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), forecastTimeout)
		defer cancel()

		fc, err := svc.Fetch(ctx, loc)
		return forecastFetchedMsg{seq: seq, location: loc, forecast: fc, err: err}
	}
}

// saveLocation persists the selected location
func saveLocation(store PreferenceStore, loc models.Location) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		return preferenceSavedMsg{key: "location", err: store.SaveLocation(ctx, loc)}
	}
}

// saveUnit persists the temperature unit
func saveUnit(store PreferenceStore, unit models.TemperatureUnit) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		return preferenceSavedMsg{key: "unit", err: store.SaveUnit(ctx, unit)}
	}
}
