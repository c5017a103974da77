package models

import "fmt"

// Location represents a searchable place.
// Identity is the (Name, Latitude, Longitude) triple.
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	State     string  `json:"state,omitempty"` // State or province, optional
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultLocation is used when no preference has been saved
var DefaultLocation = Location{
	Name:      "New York",
	Country:   "United States",
	Latitude:  40.7128,
	Longitude: -74.006,
}

// Key returns the identity of the location for deduplication
func (l Location) Key() string {
	return fmt.Sprintf("%s|%g|%g", l.Name, l.Latitude, l.Longitude)
}

// DisplayName renders "Name, State, Country", skipping empty parts
func (l Location) DisplayName() string {
	name := l.Name
	if l.State != "" && l.State != l.Name {
		name += ", " + l.State
	}
	if l.Country != "" {
		name += ", " + l.Country
	}
	return name
}

// DedupeLocations drops repeated locations, keeping the first occurrence
func DedupeLocations(locations []Location) []Location {
	seen := make(map[string]bool, len(locations))
	result := make([]Location, 0, len(locations))
	for _, loc := range locations {
		key := loc.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, loc)
	}
	return result
}
