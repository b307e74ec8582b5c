package models

import "time"

// SavedPlace is a location the user pinned to the Cities view
type SavedPlace struct {
	ID        int64     `json:"id"` // Database Primary Key (0 if not saved)
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// PlaceFromLocation builds an unsaved SavedPlace from a snapshot location
func PlaceFromLocation(loc Location) SavedPlace {
	return SavedPlace{
		Name:    loc.Name,
		Region:  loc.Region,
		Country: loc.Country,
	}
}
