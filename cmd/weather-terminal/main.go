package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/forecast"
	"github.com/ngmaloney/weather-terminal/internal/logging"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
	"github.com/ngmaloney/weather-terminal/internal/preferences"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

func main() {
	location := flag.String("location", "", "Location to load on start (e.g., \"Boston\"); comma-separated with --print")
	printOnly := flag.Bool("print", false, "Print the forecast for --location and exit instead of starting the TUI")
	unitFlag := flag.String("unit", "", "Temperature unit: celsius or fahrenheit")
	viewFlag := flag.String("view", string(models.ViewThreeDay), "Forecast view: hourly, three-day or seven-day")
	flag.Parse()

	if *printOnly && *location == "" {
		fmt.Println("Error: --print requires --location.")
		os.Exit(1)
	}

	view, err := models.ParseForecastView(*viewFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *printOnly {
		err = runPrint(ctx, cfg, *location, *unitFlag, view)
	} else {
		err = runTUI(ctx, cfg, *location, *unitFlag, view)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func newService(cfg *config.Config, logger *slog.Logger) *weather.Service {
	opts := openmeteo.DefaultOptions()
	opts.ForecastURL = cfg.WeatherAPIURL
	opts.GeocodingURL = cfg.GeocodingAPIURL
	opts.ForecastDays = cfg.ForecastDays
	opts.Timeout = cfg.HTTPTimeout
	opts.UserAgent = cfg.UserAgent
	opts.Retry.MaxRetries = cfg.HTTPMaxRetries
	opts.Logger = logger

	return weather.NewService(
		openmeteo.NewForecastClient(opts),
		openmeteo.NewGeocodingClient(opts),
		forecast.NewAssembler(),
		weather.WithLogger(logger),
	)
}

// resolveUnit picks the flag, then the saved preference, then the configured
// default. An unreadable preference is logged and the default used.
func resolveUnit(ctx context.Context, flagValue string, prefs *preferences.Repository, fallback models.TemperatureUnit, logger *slog.Logger) (models.TemperatureUnit, error) {
	if flagValue != "" {
		return models.ParseTemperatureUnit(flagValue)
	}
	if prefs == nil {
		return fallback, nil
	}
	unit, err := prefs.Unit(ctx, fallback)
	if err != nil {
		logger.Warn("loading saved unit failed", "error", err)
		return fallback, nil
	}
	return unit, nil
}

// runPrint fetches every comma-separated location and writes a plain report to stdout
func runPrint(ctx context.Context, cfg *config.Config, locations, unitFlag string, view models.ForecastView) error {
	var logger *slog.Logger
	if cfg.IsLocal() {
		logger = logging.New(os.Stderr, cfg.LogLevel)
	} else {
		logger = logging.NewJSON(os.Stderr, cfg.LogLevel)
	}

	unit, err := resolveUnit(ctx, unitFlag, nil, cfg.Unit(), logger)
	if err != nil {
		return err
	}

	svc := newService(cfg, logger)
	results := svc.FetchAll(ctx, strings.Split(locations, ","))

	failed := 0
	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		if r.Err != nil {
			failed++
			fmt.Printf("%s: %v\n", r.Query, r.Err)
			continue
		}
		if err := writeReport(os.Stdout, r.Forecast, unit, view); err != nil {
			return err
		}
	}

	if failed == len(results) {
		return fmt.Errorf("no forecasts could be loaded")
	}
	return nil
}

// runTUI starts the interactive terminal UI
func runTUI(ctx context.Context, cfg *config.Config, location, unitFlag string, view models.ForecastView) error {
	logger, closer, err := logging.NewFile(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = database.DBPath()
	}

	var prefs *preferences.Repository
	var db *sql.DB
	db, err = database.Open(dbPath)
	if err != nil {
		// Preferences are optional; run without persistence
		logger.Warn("opening preferences database failed", "path", dbPath, "error", err)
	} else {
		defer db.Close()
		prefs = preferences.NewRepository(db)
	}

	unit, err := resolveUnit(ctx, unitFlag, prefs, cfg.Unit(), logger)
	if err != nil {
		return err
	}

	svc := newService(cfg, logger)

	var start *models.Location
	if location != "" {
		loc, err := svc.Resolve(ctx, location)
		if err != nil {
			return fmt.Errorf("finding %q: %w", location, err)
		}
		start = &loc
	} else if prefs != nil {
		start, err = prefs.LastLocation(ctx)
		if err != nil {
			logger.Warn("loading saved location failed", "error", err)
		}
	}

	opts := ui.Options{
		Service:  svc,
		Logger:   logger,
		Location: start,
		Unit:     unit,
		View:     view,
		Debounce: cfg.SearchDebounce,
	}
	if prefs != nil {
		opts.Store = prefs
	}

	logger.Info("starting", "env", cfg.Environment, "unit", unit, "view", view)

	p := tea.NewProgram(ui.NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
