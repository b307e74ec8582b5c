// Package condition maps free-text weather descriptions to visual categories.
package condition

import "strings"

// Category is a visual weather category
type Category int

const (
	Unknown Category = iota
	Clear
	Cloudy
	Rainy
	Windy
	Snowy
	Foggy
	Thunder
)

// rule pairs a category with the keywords that select it.
// Row order is the priority used by Primary.
type rule struct {
	category Category
	keywords []string
}

var rules = []rule{
	{Clear, []string{"sun", "clear"}},
	{Cloudy, []string{"cloud", "cast"}},
	{Rainy, []string{"rain"}},
	{Windy, []string{"wind"}},
	{Snowy, []string{"snow"}},
	{Foggy, []string{"fog", "mist"}},
	{Thunder, []string{"thunder"}},
}

// Classify returns every category whose keywords appear in text, in table order.
// Matching is a case-insensitive substring check. It never returns an empty slice:
// text that matches nothing yields [Unknown].
func Classify(text string) []Category {
	lower := strings.ToLower(text)

	var matched []Category
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, r.category)
				break
			}
		}
	}

	if len(matched) == 0 {
		return []Category{Unknown}
	}
	return matched
}

// Primary returns the single best category for text, using table order as the tie-break
func Primary(text string) Category {
	return Classify(text)[0]
}

// Has reports whether c is among cats
func Has(cats []Category, c Category) bool {
	for _, got := range cats {
		if got == c {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	switch c {
	case Clear:
		return "Clear"
	case Cloudy:
		return "Cloudy"
	case Rainy:
		return "Rainy"
	case Windy:
		return "Windy"
	case Snowy:
		return "Snowy"
	case Foggy:
		return "Foggy"
	case Thunder:
		return "Thunder"
	default:
		return "Unknown"
	}
}
