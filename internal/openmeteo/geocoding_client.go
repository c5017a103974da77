package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// OpenMeteoGeocodingClient implements GeocodingClient using the Open-Meteo
// geocoding API
type OpenMeteoGeocodingClient struct {
	baseURL     string
	http        *doer
	minInterval time.Duration

	mu       sync.Mutex
	lastCall time.Time
}

// NewGeocodingClient creates a geocoding client from opts
func NewGeocodingClient(opts Options) *OpenMeteoGeocodingClient {
	opts = opts.withDefaults()
	return &OpenMeteoGeocodingClient{
		baseURL:     opts.GeocodingURL,
		http:        newDoer(opts.Timeout, opts.Retry, opts.UserAgent, opts.Logger),
		minInterval: 200 * time.Millisecond,
	}
}

// SearchLocations returns deduplicated matches for query. Queries shorter
// than MinQueryLength return no results without calling the API.
func (c *OpenMeteoGeocodingClient) SearchLocations(ctx context.Context, query string) ([]models.Location, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []models.Location{}, nil
	}

	params := url.Values{}
	params.Add("name", query)
	params.Add("count", "5")
	params.Add("language", "en")
	params.Add("format", "json")

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	if err := c.throttle(ctx); err != nil {
		return nil, err
	}

	var resp geocodingResponse
	if err := c.http.getJSON(ctx, requestURL, &resp); err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}

	locations := make([]models.Location, 0, len(resp.Results))
	for _, r := range resp.Results {
		locations = append(locations, models.Location{
			Name:      r.Name,
			Country:   r.Country,
			State:     r.Admin1,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}

	return models.DedupeLocations(locations), nil
}

// Geocode returns the best match for query
func (c *OpenMeteoGeocodingClient) Geocode(ctx context.Context, query string) (*models.Location, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < MinQueryLength {
		return nil, fmt.Errorf("%w: %q", ErrQueryTooShort, query)
	}

	locations, err := c.SearchLocations(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoResults, query)
	}

	return &locations[0], nil
}

// throttle spaces calls at least minInterval apart
func (c *OpenMeteoGeocodingClient) throttle(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastCall.IsZero() {
		if wait := c.minInterval - time.Since(c.lastCall); wait > 0 {
			if err := sleepContext(ctx, wait); err != nil {
				return err
			}
		}
	}
	c.lastCall = time.Now()
	return nil
}
