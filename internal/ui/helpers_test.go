package ui

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// mockClient implements weatherapi.Client
type mockClient struct {
	snapshot      *models.WeatherSnapshot
	forecastErr   error
	entries       []models.SuggestionEntry
	searchErr     error
	forecastCalls int32
	searchCalls   int32
}

func (m *mockClient) FetchForecast(ctx context.Context, place string) (*models.WeatherSnapshot, error) {
	atomic.AddInt32(&m.forecastCalls, 1)
	if m.forecastErr != nil {
		return nil, m.forecastErr
	}
	if m.snapshot != nil {
		return m.snapshot, nil
	}
	return sampleSnapshot(place), nil
}

func (m *mockClient) SearchPlaces(ctx context.Context, fragment string) ([]models.SuggestionEntry, error) {
	atomic.AddInt32(&m.searchCalls, 1)
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.entries, nil
}

// mockStore implements PlaceStore in memory
type mockStore struct {
	places []models.SavedPlace
	err    error
}

func (s *mockStore) Save(place *models.SavedPlace) error {
	if s.err != nil {
		return s.err
	}
	place.ID = int64(len(s.places) + 1)
	s.places = append(s.places, *place)
	return nil
}

func (s *mockStore) List() ([]models.SavedPlace, error) {
	return s.places, s.err
}

func (s *mockStore) Delete(name string) error {
	var kept []models.SavedPlace
	for _, p := range s.places {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	s.places = kept
	return s.err
}

func sampleSnapshot(place string) *models.WeatherSnapshot {
	start := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	days := make([]models.ForecastDay, models.ForecastLength)
	for i := range days {
		days[i] = models.ForecastDay{
			Date:     start.AddDate(0, 0, i),
			MaxTempC: 28 + float64(i),
			MinTempC: 19 + float64(i),
		}
	}

	return &models.WeatherSnapshot{
		Location: models.Location{Name: place, Region: "Karnataka", Country: "India"},
		Current: models.CurrentConditions{
			TemperatureC:    27.2,
			FeelsLikeC:      28.9,
			WindKph:         14.4,
			HumidityPercent: 62,
			UVIndex:         6,
			ConditionText:   "Partly cloudy",
		},
		ForecastDays: days,
		FetchedAt:    start,
	}
}

func sampleEntries() []models.SuggestionEntry {
	return []models.SuggestionEntry{
		{ID: 1, Name: "London", Region: "City of London, Greater London", Country: "United Kingdom"},
		{ID: 2, Name: "London", Region: "Ontario", Country: "Canada"},
	}
}

// newTestModel returns a model whose cursor does not blink, so key handling
// only produces the commands under test
func newTestModel(client weatherapi.Client, store PlaceStore) Model {
	m := NewModel(Options{
		Client:         client,
		Places:         store,
		DefaultPlace:   "Bengaluru",
		RequestTimeout: 5 * time.Second,
	})
	m.input.Cursor.SetMode(cursor.CursorStatic)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// runCmd executes cmd and flattens batches into the resulting messages
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send delivers msg to the model and then every message its commands produce
func send(m Model, msg tea.Msg) Model {
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	for _, next := range runCmd(cmd) {
		switch next.(type) {
		case forecastFetchedMsg, suggestionsFetchedMsg, placesLoadedMsg, placeSavedMsg, placeDeletedMsg, initializeMsg:
			m = send(m, next)
		}
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// providerServer serves the weatherapi fixtures. A non-200 forecastStatus
// makes every forecast lookup fail with that status.
type providerServer struct {
	*httptest.Server
	forecastCalls int32
	searchCalls   int32
}

func newProviderServer(t *testing.T, forecastStatus int) *providerServer {
	t.Helper()

	fixture := func(name string) []byte {
		data, err := os.ReadFile(filepath.Join("..", "weatherapi", "testdata", name))
		if err != nil {
			t.Fatalf("reading fixture %s: %v", name, err)
		}
		return data
	}
	forecast := fixture("forecast_response.json")
	search := fixture("search_response.json")
	notFound := fixture("error_response.json")

	ps := &providerServer{}
	ps.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/forecast.json":
			atomic.AddInt32(&ps.forecastCalls, 1)
			if forecastStatus != http.StatusOK {
				w.WriteHeader(forecastStatus)
				w.Write(notFound)
				return
			}
			w.Write(forecast)
		case "/search.json":
			atomic.AddInt32(&ps.searchCalls, 1)
			w.Write(search)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ps.Close)
	return ps
}

func (ps *providerServer) client(apiKey string) *weatherapi.APIClient {
	return weatherapi.NewClient(weatherapi.StaticKey(apiKey), weatherapi.WithBaseURL(ps.URL))
}

func (ps *providerServer) calls() string {
	return fmt.Sprintf("forecast=%d search=%d", atomic.LoadInt32(&ps.forecastCalls), atomic.LoadInt32(&ps.searchCalls))
}
