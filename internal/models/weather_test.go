package models

import (
	"testing"
	"time"
)

func TestLocation_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want string
	}{
		{"all parts", Location{Name: "Bengaluru", Region: "Karnataka", Country: "India"}, "Bengaluru, Karnataka, India"},
		{"missing region", Location{Name: "Singapore", Country: "Singapore"}, "Singapore, Singapore"},
		{"whitespace only region", Location{Name: "Paris", Region: "  ", Country: "France"}, "Paris, France"},
		{"empty", Location{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeatherSnapshot_MaxTemps(t *testing.T) {
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	snap := &WeatherSnapshot{
		ForecastDays: []ForecastDay{
			{Date: day, MaxTempC: 29.1, MinTempC: 19.0},
			{Date: day.AddDate(0, 0, 1), MaxTempC: 27.4, MinTempC: 18.2},
			{Date: day.AddDate(0, 0, 2), MaxTempC: 30.0, MinTempC: 20.5},
		},
	}

	got := snap.MaxTemps()
	want := []float64{29.1, 27.4, 30.0}

	if len(got) != len(want) {
		t.Fatalf("len(MaxTemps()) = %d, want %d", len(got), len(want))
	}
	// Order must follow the provider, not the values
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MaxTemps()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSuggestionEntry_Label(t *testing.T) {
	entry := SuggestionEntry{ID: 1125257, Name: "London", Region: "City of London, Greater London", Country: "United Kingdom"}
	want := "London, City of London, Greater London, United Kingdom"
	if got := entry.Label(); got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestPlaceFromLocation(t *testing.T) {
	p := PlaceFromLocation(Location{Name: "Chatham", Region: "Massachusetts", Country: "USA"})
	if p.ID != 0 {
		t.Errorf("ID = %d, want 0 for an unsaved place", p.ID)
	}
	if p.Name != "Chatham" || p.Region != "Massachusetts" || p.Country != "USA" {
		t.Errorf("PlaceFromLocation() = %+v", p)
	}
}
