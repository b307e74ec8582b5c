package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/condition"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

const gaugeWidth = 20

// glyph returns the icon drawn for a condition category
func glyph(c condition.Category) string {
	switch c {
	case condition.Clear:
		return "☀"
	case condition.Cloudy:
		return "☁"
	case condition.Rainy:
		return "☂"
	case condition.Windy:
		return "≋"
	case condition.Snowy:
		return "❄"
	case condition.Foggy:
		return "≡"
	case condition.Thunder:
		return "⚡"
	default:
		return "?"
	}
}

// conditionLine renders every matched category glyph followed by the provider's text
func conditionLine(text string) string {
	cats := condition.Classify(text)
	glyphs := make([]string, len(cats))
	for i, c := range cats {
		glyphs[i] = glyph(c)
	}
	return fmt.Sprintf("%s %s", strings.Join(glyphs, " "), text)
}

// renderHeader renders the location, primary glyph and current temperature
func renderHeader(s *models.WeatherSnapshot) string {
	primary := condition.Primary(s.Current.ConditionText)

	var lines []string
	lines = append(lines, titleStyle.Render(fmt.Sprintf("%s %s", glyph(primary), s.Location.DisplayName())))
	lines = append(lines, temperatureStyle.Render(fmt.Sprintf("%.0f°C", s.Current.TemperatureC)))
	lines = append(lines, valueStyle.Render(conditionLine(s.Current.ConditionText)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderForecast renders the forecast days in provider order with a max-temperature sparkline
func renderForecast(s *models.WeatherSnapshot, width int) string {
	if len(s.ForecastDays) == 0 {
		return mutedStyle.Render("No forecast available")
	}

	var lines []string
	lines = append(lines, sectionHeaderStyle.Render(fmt.Sprintf("%d-DAY FORECAST", len(s.ForecastDays))))
	for _, day := range s.ForecastDays {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			labelStyle.Render(day.Date.Format("Mon Jan 02")),
			valueStyle.Render(fmt.Sprintf("%5.1f°C", day.MaxTempC)),
			mutedStyle.Render(fmt.Sprintf("%5.1f°C", day.MinTempC)),
		))
	}

	if chart := renderSparkline(s.MaxTemps(), width); chart != "" {
		lines = append(lines, "", labelStyle.Render("Max temperature trend"), chart)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderSparkline draws one column per day, stretched to fill width
func renderSparkline(temps []float64, width int) string {
	if len(temps) == 0 {
		return ""
	}

	perDay := width / len(temps)
	if perDay < 1 {
		perDay = 1
	}
	if perDay > 6 {
		perDay = 6
	}

	// The sparkline draws values <= 0 as empty, so lift the series to start at 1
	low := temps[0]
	for _, t := range temps[1:] {
		if t < low {
			low = t
		}
	}

	sl := sparkline.New(perDay*len(temps), 3, sparkline.WithStyle(sparklineStyle))
	for _, t := range temps {
		for i := 0; i < perDay; i++ {
			sl.Push(t - low + 1)
		}
	}
	sl.Draw()
	return sl.View()
}

// renderAirConditions renders the ambient metrics pane
func renderAirConditions(c models.CurrentConditions) string {
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", labelStyle.Render(fmt.Sprintf("%-10s", label)), valueStyle.Render(value))
	}

	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("AIR CONDITIONS"))
	lines = append(lines, row("Real Feel", fmt.Sprintf("%.0f°C", c.FeelsLikeC)))
	lines = append(lines, row("Wind", fmt.Sprintf("%.1f km/h", c.WindKph)))
	lines = append(lines, row("Humidity", fmt.Sprintf("%d%%", c.HumidityPercent)))
	lines = append(lines, "           "+humidityGauge(c.HumidityPercent, gaugeWidth))
	lines = append(lines, row("UV Index", fmt.Sprintf("%.0f", c.UVIndex)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// humidityGauge renders a fixed-width bar filled in proportion to percent
func humidityGauge(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return successStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}

// RenderReport renders a snapshot without any interactive chrome.
// Used for the one-shot report when stdout is not a terminal.
func RenderReport(s *models.WeatherSnapshot, width int) string {
	if s == nil {
		return mutedStyle.Render("No weather data available")
	}
	if width <= 0 {
		width = 60
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(s),
		renderForecast(s, width),
		renderAirConditions(s.Current),
	)
}

// RenderFailure renders a failed fetch the way the dashboard shows it
func RenderFailure(f Failure) string {
	lines := []string{errorStyle.Render("✗ " + f.Title), f.Message}
	if f.Hint != "" {
		lines = append(lines, mutedStyle.Render(f.Hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
