package weather

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ngmaloney/weather-terminal/internal/forecast"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
)

// DefaultConcurrency bounds parallel fetches in FetchAll
const DefaultConcurrency = 4

// Service orchestrates geocoding, forecast fetches and assembly
type Service struct {
	forecasts   openmeteo.ForecastClient
	geocoder    openmeteo.GeocodingClient
	assembler   *forecast.Assembler
	logger      *slog.Logger
	now         func() time.Time
	concurrency int
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the time source used as "now" during assembly
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithConcurrency sets the FetchAll parallelism
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLogger sets the service logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new weather service
func NewService(forecasts openmeteo.ForecastClient, geocoder openmeteo.GeocodingClient, assembler *forecast.Assembler, opts ...Option) *Service {
	s := &Service{
		forecasts:   forecasts,
		geocoder:    geocoder,
		assembler:   assembler,
		logger:      slog.Default(),
		now:         time.Now,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns locations matching query
func (s *Service) Search(ctx context.Context, query string) ([]models.Location, error) {
	return s.geocoder.SearchLocations(ctx, query)
}

// Resolve returns the best match for query
func (s *Service) Resolve(ctx context.Context, query string) (models.Location, error) {
	loc, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		return models.Location{}, fmt.Errorf("resolving %q: %w", query, err)
	}
	return *loc, nil
}

// Fetch retrieves and assembles the forecast for loc
func (s *Service) Fetch(ctx context.Context, loc models.Location) (*models.Forecast, error) {
	start := s.now()

	resp, err := s.forecasts.GetForecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast for %s: %w", loc.Name, err)
	}

	fc := s.assembler.Assemble(resp, loc, s.now())
	s.logger.Debug("forecast assembled",
		"location", loc.Name,
		"days", len(fc.Daily),
		"hours", len(fc.Hourly),
		"coastal", fc.Current.Marine != nil,
		"elapsed", s.now().Sub(start))

	return fc, nil
}

// Result is the outcome for one query in FetchAll
type Result struct {
	Query    string
	Location models.Location
	Forecast *models.Forecast
	Err      error
}

// FetchAll resolves and fetches each query concurrently. Results keep the
// order of queries; a failure is recorded on its Result and does not
// cancel the others.
func (s *Service) FetchAll(ctx context.Context, queries []string) []Result {
	results := make([]Result, len(queries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, query := range queries {
		results[i].Query = strings.TrimSpace(query)

		g.Go(func() error {
			r := &results[i]

			loc, err := s.Resolve(gCtx, r.Query)
			if err != nil {
				r.Err = err
				s.logger.Warn("location lookup failed", "query", r.Query, "error", err)
				return nil
			}
			r.Location = loc

			r.Forecast, r.Err = s.Fetch(gCtx, loc)
			if r.Err != nil {
				s.logger.Warn("forecast fetch failed", "location", loc.Name, "error", r.Err)
			}
			return nil
		})
	}

	// goroutines never return errors
	_ = g.Wait()

	return results
}
