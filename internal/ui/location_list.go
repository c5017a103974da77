package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/weather-terminal/internal/marine"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// locationItem wraps a Location for use in a list
type locationItem struct {
	location models.Location
}

// FilterValue implements list.Item
func (l locationItem) FilterValue() string {
	return l.location.Name
}

// Title implements list.DefaultItem
func (l locationItem) Title() string {
	return l.location.DisplayName()
}

// Description implements list.DefaultItem
func (l locationItem) Description() string {
	desc := fmt.Sprintf("%.4f, %.4f", l.location.Latitude, l.location.Longitude)
	if region, ok := marine.RegionFor(l.location.Latitude, l.location.Longitude); ok {
		desc += " • " + region
	}
	return desc
}

// createLocationList creates a list.Model from search results
func createLocationList(locations []models.Location, width, height int) list.Model {
	items := make([]list.Item, len(locations))
	for i, loc := range locations {
		items[i] = locationItem{location: loc}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Matching Locations"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return l
}
