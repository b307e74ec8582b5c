package ui

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// Suggestions drives the autocomplete dropdown. Every query change issues a new
// search and supersedes the previous one; lookup failures only empty the list.
type Suggestions struct {
	client  weatherapi.Client
	timeout time.Duration
	seq     uint64
	entries []models.SuggestionEntry
	cursor  int // index of the highlighted entry, -1 when none
}

// NewSuggestions creates an empty suggestion controller
func NewSuggestions(client weatherapi.Client, timeout time.Duration) Suggestions {
	return Suggestions{
		client:  client,
		timeout: timeout,
		cursor:  -1,
	}
}

// Entries returns the current suggestion list
func (s *Suggestions) Entries() []models.SuggestionEntry {
	return s.entries
}

// QueryChanged reacts to a new query text. A blank query clears the list and
// returns nil; anything else returns the search command.
func (s *Suggestions) QueryChanged(text string) tea.Cmd {
	s.seq++
	s.cursor = -1

	if strings.TrimSpace(text) == "" {
		s.entries = nil
		return nil
	}
	return searchPlaces(s.client, s.timeout, s.seq, text)
}

// Apply records a search result, dropping it if a newer query was issued since.
func (s *Suggestions) Apply(msg suggestionsFetchedMsg) bool {
	if msg.seq != s.seq {
		return false
	}

	s.cursor = -1
	if msg.err != nil {
		log.Printf("suggestions for %q failed: %v", msg.query, msg.err)
		s.entries = nil
		return true
	}

	s.entries = msg.entries
	return true
}

// Choose clears the list and returns the place name to commit.
// Searches still in flight are superseded.
func (s *Suggestions) Choose(entry models.SuggestionEntry) string {
	s.Dismiss()
	return entry.Name
}

// Dismiss empties the list without touching the query
func (s *Suggestions) Dismiss() {
	s.seq++
	s.entries = nil
	s.cursor = -1
}

// MoveCursor moves the highlight by delta. Moving above the first entry
// returns focus to the input.
func (s *Suggestions) MoveCursor(delta int) {
	if len(s.entries) == 0 {
		s.cursor = -1
		return
	}

	s.cursor += delta
	if s.cursor < -1 {
		s.cursor = -1
	}
	if s.cursor >= len(s.entries) {
		s.cursor = len(s.entries) - 1
	}
}

// Highlighted returns the highlighted entry, if any
func (s *Suggestions) Highlighted() (models.SuggestionEntry, bool) {
	if s.cursor < 0 || s.cursor >= len(s.entries) {
		return models.SuggestionEntry{}, false
	}
	return s.entries[s.cursor], true
}
