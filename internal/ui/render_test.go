package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/ngmaloney/weather-terminal/internal/condition"
)

func TestGlyph(t *testing.T) {
	seen := map[string]condition.Category{}
	for _, c := range []condition.Category{
		condition.Unknown, condition.Clear, condition.Cloudy, condition.Rainy,
		condition.Windy, condition.Snowy, condition.Foggy, condition.Thunder,
	} {
		g := glyph(c)
		if g == "" {
			t.Errorf("glyph(%v) is empty", c)
		}
		if prev, dup := seen[g]; dup {
			t.Errorf("glyph(%v) duplicates glyph(%v)", c, prev)
		}
		seen[g] = c
	}
}

func TestConditionLine(t *testing.T) {
	line := conditionLine("Partly cloudy with rain showers")

	if !strings.Contains(line, glyph(condition.Cloudy)) || !strings.Contains(line, glyph(condition.Rainy)) {
		t.Errorf("conditionLine() = %q, want both cloudy and rainy glyphs", line)
	}
	if !strings.HasSuffix(line, "Partly cloudy with rain showers") {
		t.Errorf("conditionLine() = %q, want the provider text kept", line)
	}
}

func TestRenderReport(t *testing.T) {
	snap := sampleSnapshot("Bengaluru")
	out := RenderReport(snap, 60)

	for _, want := range []string{"Bengaluru, Karnataka, India", "5-DAY FORECAST", "AIR CONDITIONS", "62%", "Real Feel", "UV Index"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderReport() missing %q", want)
		}
	}
	for _, day := range snap.ForecastDays {
		if !strings.Contains(out, day.Date.Format("Mon Jan 02")) {
			t.Errorf("RenderReport() missing day %s", day.Date.Format("Mon Jan 02"))
		}
	}
}

func TestRenderReport_Nil(t *testing.T) {
	if out := RenderReport(nil, 60); !strings.Contains(out, "No weather data") {
		t.Errorf("RenderReport(nil) = %q", out)
	}
}

func TestHumidityGauge(t *testing.T) {
	tests := []struct {
		percent    int
		wantFilled int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}

	for _, tt := range tests {
		gauge := humidityGauge(tt.percent, 20)
		if got := strings.Count(gauge, "█"); got != tt.wantFilled {
			t.Errorf("humidityGauge(%d) filled = %d, want %d", tt.percent, got, tt.wantFilled)
		}
		if got := strings.Count(gauge, "█") + strings.Count(gauge, "░"); got != 20 {
			t.Errorf("humidityGauge(%d) width = %d, want 20", tt.percent, got)
		}
	}
}

func TestRenderFailure(t *testing.T) {
	out := RenderFailure(Failure{Title: "Not Available", Message: "Please check the city name and try again.", Hint: "Set WEATHER_API_KEY"})
	for _, want := range []string{"Not Available", "Please check the city name", "WEATHER_API_KEY"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderFailure() missing %q", want)
		}
	}
}

// sparklineColumns returns, per day, the text of that day's first column read top to bottom
func sparklineColumns(t *testing.T, chart string, days, perDay int) []string {
	t.Helper()

	lines := strings.Split(ansi.Strip(chart), "\n")
	cols := make([]string, days)
	for i := range cols {
		var col strings.Builder
		for _, line := range lines {
			r := []rune(line)
			if i*perDay < len(r) {
				col.WriteRune(r[i*perDay])
			} else {
				col.WriteRune(' ')
			}
		}
		cols[i] = col.String()
	}
	return cols
}

func TestRenderSparkline_NonPositiveTemperatures(t *testing.T) {
	tests := []struct {
		name  string
		temps []float64
	}{
		{"all below freezing", []float64{-10, -12, -8, -15, -9}},
		{"all zero", []float64{0, 0, 0, 0, 0}},
		{"mixed sign", []float64{-3, 2, -1, 4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// width 30 gives six columns per day
			cols := sparklineColumns(t, renderSparkline(tt.temps, 30), len(tt.temps), 6)
			for i, col := range cols {
				if strings.TrimSpace(col) == "" {
					t.Errorf("day %d (%.0f°C) drew an empty column", i, tt.temps[i])
				}
			}
		})
	}
}

func TestRenderSparkline_DistinctNegativeDays(t *testing.T) {
	temps := []float64{-3, 2, -1, 4, 0}
	cols := sparklineColumns(t, renderSparkline(temps, 30), len(temps), 6)

	// -3, -1 and 0 must not collapse into the same bar
	seen := map[string]float64{}
	for _, i := range []int{0, 2, 4} {
		if prev, dup := seen[cols[i]]; dup {
			t.Errorf("%.0f°C and %.0f°C drew identical columns %q", prev, temps[i], cols[i])
		}
		seen[cols[i]] = temps[i]
	}
}
