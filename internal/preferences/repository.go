package preferences

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	keyLastLocation = "last_location"
	keyUnit         = "temperature_unit"
)

// Repository persists user preferences in the preferences table
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository backed by db. The schema must exist
// (see database.Open).
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveLocation stores the last selected location
func (r *Repository) SaveLocation(ctx context.Context, loc models.Location) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("encoding location: %w", err)
	}
	return r.set(ctx, keyLastLocation, string(data))
}

// LastLocation returns the stored location, or nil if none was saved
func (r *Repository) LastLocation(ctx context.Context) (*models.Location, error) {
	value, err := r.get(ctx, keyLastLocation)
	if err != nil || value == "" {
		return nil, err
	}

	var loc models.Location
	if err := json.Unmarshal([]byte(value), &loc); err != nil {
		return nil, fmt.Errorf("decoding location: %w", err)
	}
	return &loc, nil
}

// SaveUnit stores the temperature unit
func (r *Repository) SaveUnit(ctx context.Context, unit models.TemperatureUnit) error {
	return r.set(ctx, keyUnit, string(unit))
}

// Unit returns the stored unit, or fallback if none was saved
func (r *Repository) Unit(ctx context.Context, fallback models.TemperatureUnit) (models.TemperatureUnit, error) {
	value, err := r.get(ctx, keyUnit)
	if err != nil {
		return fallback, err
	}
	if value == "" {
		return fallback, nil
	}

	unit, err := models.ParseTemperatureUnit(value)
	if err != nil {
		return fallback, fmt.Errorf("stored unit: %w", err)
	}
	return unit, nil
}

func (r *Repository) set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}
	return nil
}

// get returns "" when the key is absent
func (r *Repository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading preference %s: %w", key, err)
	}
	return value, nil
}
