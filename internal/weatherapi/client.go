package weatherapi

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Client defines the lookups the dashboard makes against the weather provider
type Client interface {
	// FetchForecast retrieves current conditions and the 5-day forecast for a place
	FetchForecast(ctx context.Context, place string) (*models.WeatherSnapshot, error)

	// SearchPlaces retrieves place-name suggestions for a partial query
	SearchPlaces(ctx context.Context, fragment string) ([]models.SuggestionEntry, error)
}

// KeyFunc returns the API credential. It is called once per operation;
// an empty result means the credential is not configured.
type KeyFunc func() string

// StaticKey returns a KeyFunc that always yields key
func StaticKey(key string) KeyFunc {
	return func() string { return key }
}
