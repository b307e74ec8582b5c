package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// Message types for async operations

// initializeMsg commits the default place once the program starts
type initializeMsg struct {
	place string
}

// forecastFetchedMsg is sent when a committed forecast fetch resolves
type forecastFetchedMsg struct {
	seq      uint64
	place    string
	snapshot *models.WeatherSnapshot
	err      error
}

// suggestionsFetchedMsg is sent when a place search resolves
type suggestionsFetchedMsg struct {
	seq     uint64
	query   string
	entries []models.SuggestionEntry
	err     error
}

func initialize(place string) tea.Cmd {
	return func() tea.Msg {
		return initializeMsg{place: place}
	}
}

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func fetchForecast(client weatherapi.Client, timeout time.Duration, seq uint64, place string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		snapshot, err := client.FetchForecast(ctx, place)
		return forecastFetchedMsg{seq: seq, place: place, snapshot: snapshot, err: err}
	}
}

func searchPlaces(client weatherapi.Client, timeout time.Duration, seq uint64, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		entries, err := client.SearchPlaces(ctx, query)
		return suggestionsFetchedMsg{seq: seq, query: query, entries: entries, err: err}
	}
}
