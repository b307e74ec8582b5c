package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// PlaceStore persists the places shown in the Cities view
type PlaceStore interface {
	Save(place *models.SavedPlace) error
	List() ([]models.SavedPlace, error)
	Delete(name string) error
}

type placesLoadedMsg struct {
	places []models.SavedPlace
	err    error
}

type placeSavedMsg struct {
	place *models.SavedPlace
	err   error
}

type placeDeletedMsg struct {
	name string
	err  error
}

func loadPlaces(s PlaceStore) tea.Cmd {
	return func() tea.Msg {
		places, err := s.List()
		return placesLoadedMsg{places: places, err: err}
	}
}

func savePlace(s PlaceStore, place models.SavedPlace) tea.Cmd {
	return func() tea.Msg {
		err := s.Save(&place)
		return placeSavedMsg{place: &place, err: err}
	}
}

func deletePlace(s PlaceStore, name string) tea.Cmd {
	return func() tea.Msg {
		err := s.Delete(name)
		return placeDeletedMsg{name: name, err: err}
	}
}
