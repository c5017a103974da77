package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/sony/gobreaker/v2"
)

// RetryPolicy configures retries for 429 and 5xx responses
type RetryPolicy struct {
	MaxRetries int
	MinWait    time.Duration
	MaxWait    time.Duration
}

// DefaultRetryPolicy returns the policy used by DefaultOptions
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 2,
		MinWait:    250 * time.Millisecond,
		MaxWait:    5 * time.Second,
	}
}

// doer executes GET requests against Open-Meteo with a circuit breaker,
// retries with jittered backoff, gzip decoding and request IDs.
type doer struct {
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	retry     RetryPolicy
	userAgent string
	logger    *slog.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

func newDoer(timeout time.Duration, retry RetryPolicy, userAgent string, logger *slog.Logger) *doer {
	d := &doer{
		client: &http.Client{
			Timeout:   timeout,
			Transport: gzhttp.Transport(http.DefaultTransport),
		},
		retry:     retry,
		userAgent: userAgent,
		logger:    logger,
		sleep:     sleepContext,
	}

	d.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			d.logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return d
}

// getJSON fetches url and decodes a 200 response body into out
func (d *doer) getJSON(ctx context.Context, url string, out any) error {
	requestID := uuid.NewString()
	logger := d.logger.With("request_id", requestID)

	var lastErr error
	for attempt := 0; attempt <= d.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := d.backoff(attempt - 1)
			var apiErr *APIError
			if errors.As(lastErr, &apiErr) && apiErr.retryAfter > 0 {
				wait = min(apiErr.retryAfter, d.retry.MaxWait)
			}
			logger.Debug("retrying request", "attempt", attempt, "wait", wait, "error", lastErr)
			if err := d.sleep(ctx, wait); err != nil {
				return err
			}
		}

		resp, err := d.breaker.Execute(func() (*http.Response, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("Accept", "application/json")
			req.Header.Set("X-Request-ID", requestID)
			if d.userAgent != "" {
				req.Header.Set("User-Agent", d.userAgent)
			}

			r, err := d.client.Do(req)
			if err != nil {
				return nil, err
			}
			if r.StatusCode != http.StatusOK {
				defer r.Body.Close()
				return nil, newAPIError(r)
			}
			return r, nil
		})

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		if err != nil {
			lastErr = err
			var apiErr *APIError
			if errors.As(err, &apiErr) && !apiErr.Retryable() {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		logger.Debug("request complete", "url", url, "status", resp.StatusCode, "attempt", attempt)
		decodeErr := json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if decodeErr != nil {
			return fmt.Errorf("failed to decode response: %w", decodeErr)
		}
		return nil
	}

	logger.Warn("request failed after retries", "url", url, "error", lastErr)
	return fmt.Errorf("request failed after %d attempts: %w", d.retry.MaxRetries+1, lastErr)
}

// backoff returns a jittered wait in [MinWait, min(MaxWait, MinWait*2^attempt)]
func (d *doer) backoff(attempt int) time.Duration {
	ceiling := float64(d.retry.MinWait) * math.Pow(2, float64(attempt))
	if ceiling > float64(d.retry.MaxWait) {
		ceiling = float64(d.retry.MaxWait)
	}
	floor := float64(d.retry.MinWait)
	if ceiling <= floor {
		return d.retry.MinWait
	}
	return time.Duration(floor + rand.Float64()*(ceiling-floor))
}

func newAPIError(r *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(r.Body, 1024))

	apiErr := &APIError{StatusCode: r.StatusCode}
	var payload struct {
		Reason string `json:"reason"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Reason != "" {
		apiErr.Reason = payload.Reason
	} else {
		apiErr.Reason = string(body)
	}
	if seconds, err := strconv.Atoi(r.Header.Get("Retry-After")); err == nil && seconds > 0 {
		apiErr.retryAfter = time.Duration(seconds) * time.Second
	}
	return apiErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
