package openmeteo

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrCircuitOpen is returned while the breaker is rejecting requests
	ErrCircuitOpen = errors.New("open-meteo: circuit breaker open")

	// ErrMalformedPayload is returned when a forecast response fails validation
	ErrMalformedPayload = errors.New("open-meteo: malformed forecast payload")

	// ErrQueryTooShort is returned by Geocode for queries under MinQueryLength runes
	ErrQueryTooShort = errors.New("open-meteo: search query too short")

	// ErrNoResults is returned by Geocode when nothing matches
	ErrNoResults = errors.New("open-meteo: no locations found")
)

// APIError is a non-2xx response from an Open-Meteo endpoint
type APIError struct {
	StatusCode int
	Reason     string

	retryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("open-meteo API returned status %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("open-meteo API returned status %d", e.StatusCode)
}

// Retryable reports whether the status is worth retrying
func (e *APIError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
