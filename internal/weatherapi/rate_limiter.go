package weatherapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/models"

	"golang.org/x/time/rate"
)

// RateLimitedClient wraps a Client and throttles place searches.
// Searches fire on every keystroke; forecast fetches are user-paced and pass through.
type RateLimitedClient struct {
	client  Client
	limiter *rate.Limiter
}

// NewRateLimitedClient creates a client allowing rps searches per second with the given burst
func NewRateLimitedClient(client Client, rps float64, burst int) *RateLimitedClient {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchForecast forwards to the underlying client
func (r *RateLimitedClient) FetchForecast(ctx context.Context, place string) (*models.WeatherSnapshot, error) {
	return r.client.FetchForecast(ctx, place)
}

// SearchPlaces waits for limiter permission, then forwards to the underlying client
func (r *RateLimitedClient) SearchPlaces(ctx context.Context, fragment string) ([]models.SuggestionEntry, error) {
	// Empty fragments never reach the network, so they don't spend a token
	if strings.TrimSpace(fragment) == "" {
		return []models.SuggestionEntry{}, nil
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, newNetworkError("search", fmt.Errorf("rate limit wait canceled: %w", err))
	}
	return r.client.SearchPlaces(ctx, fragment)
}

// Verify that our client types implement the interface
var (
	_ Client = (*APIClient)(nil)
	_ Client = (*RateLimitedClient)(nil)
)
