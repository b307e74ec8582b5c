package models

import "strings"

// SuggestionEntry is a place returned by a place-name search
type SuggestionEntry struct {
	ID      int64
	Name    string
	Region  string
	Country string
}

// Label formats the entry the way it is shown in the suggestion dropdown
func (s SuggestionEntry) Label() string {
	return joinNonEmpty(s.Name, s.Region, s.Country)
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
