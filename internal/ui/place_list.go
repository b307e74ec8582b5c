package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// placeItem wraps a SavedPlace for use in a list
type placeItem struct {
	place models.SavedPlace
}

// FilterValue implements list.Item
func (p placeItem) FilterValue() string {
	return p.place.Name
}

// Title implements list.DefaultItem
func (p placeItem) Title() string {
	return p.place.Name
}

// Description implements list.DefaultItem
func (p placeItem) Description() string {
	loc := models.Location{Region: p.place.Region, Country: p.place.Country}
	if desc := loc.DisplayName(); desc != "" {
		return desc
	}
	return "Saved " + p.place.CreatedAt.Format("Jan 2, 2006")
}

func placeItems(places []models.SavedPlace) []list.Item {
	items := make([]list.Item, len(places))
	for i, place := range places {
		items[i] = placeItem{place: place}
	}
	return items
}

// createPlaceList creates the Cities list
func createPlaceList(places []models.SavedPlace, width, height int) list.Model {
	l := list.New(placeItems(places), list.NewDefaultDelegate(), width, height)
	l.Title = "Saved Cities"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("city", "cities")

	return l
}
