// Package marine classifies coastal coordinates and synthesizes wave and tide
// data for them.
package marine

// Region is a rectangular lat/lon box approximating a stretch of coastline
type Region struct {
	Name   string
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Contains reports whether the point lies inside the box, edges included
func (r Region) Contains(lat, lon float64) bool {
	return lat >= r.LatMin && lat <= r.LatMax &&
		lon >= r.LonMin && lon <= r.LonMax
}

// coastalRegions is a coarse allow-list, not a coastline database. Inland
// points inside a box count as coastal and other coastlines are missed.
var coastalRegions = []Region{
	{Name: "US East Coast", LatMin: 25, LatMax: 45, LonMin: -85, LonMax: -65},
	{Name: "US West Coast", LatMin: 32, LatMax: 49, LonMin: -125, LonMax: -117},
	{Name: "United Kingdom", LatMin: 49, LatMax: 61, LonMin: -11, LonMax: 2},
	{Name: "Australia East Coast", LatMin: -38, LatMax: -10, LonMin: 145, LonMax: 155},
	{Name: "Mediterranean", LatMin: 30, LatMax: 46, LonMin: -6, LonMax: 36},
}

// Regions returns a copy of the coastal region table
func Regions() []Region {
	regions := make([]Region, len(coastalRegions))
	copy(regions, coastalRegions)
	return regions
}

// IsCoastal reports whether the point falls inside any coastal region
func IsCoastal(lat, lon float64) bool {
	_, ok := RegionFor(lat, lon)
	return ok
}

// RegionFor returns the first coastal region containing the point
func RegionFor(lat, lon float64) (string, bool) {
	for _, r := range coastalRegions {
		if r.Contains(lat, lon) {
			return r.Name, true
		}
	}
	return "", false
}
