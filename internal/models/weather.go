package models

import "time"

// ForecastLength is the number of forecast days requested from the provider
const ForecastLength = 5

// Location identifies the place a snapshot was resolved to
type Location struct {
	Name    string
	Region  string
	Country string
}

// CurrentConditions represents the conditions at fetch time
type CurrentConditions struct {
	TemperatureC    float64
	FeelsLikeC      float64
	WindKph         float64
	HumidityPercent int
	UVIndex         float64
	ConditionText   string // e.g., "Partly cloudy", "Light rain"
}

// ForecastDay is a single day of the forecast
type ForecastDay struct {
	Date     time.Time
	MaxTempC float64
	MinTempC float64
}

// WeatherSnapshot is the complete payload for one successful forecast fetch.
// It is replaced, never merged, by the next successful fetch.
type WeatherSnapshot struct {
	Location     Location
	Current      CurrentConditions
	ForecastDays []ForecastDay // chronological, as returned by the provider
	FetchedAt    time.Time
}

// MaxTemps returns the daily maximum temperatures in forecast order
func (s *WeatherSnapshot) MaxTemps() []float64 {
	temps := make([]float64, len(s.ForecastDays))
	for i, day := range s.ForecastDays {
		temps[i] = day.MaxTempC
	}
	return temps
}

// DisplayName formats the location as "Name, Region, Country", skipping empty parts
func (l Location) DisplayName() string {
	return joinNonEmpty(l.Name, l.Region, l.Country)
}
