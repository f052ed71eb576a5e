package weather

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Adiiii-i/travara/internal/models/response_models"
)

// FormatSummary renders a fixed-shape human-readable weather block. Missing
// fields are substituted with "N/A" instead of failing.
func FormatSummary(s *response_models.WeatherSummary) string {
	if s == nil {
		return "Weather information unavailable."
	}

	location := s.Location
	if location == "" {
		location = "Unknown"
	}
	description := "N/A"
	if s.Current.Description != "" {
		description = titleCase(s.Current.Description)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Weather in %s:**\n\n", location)
	fmt.Fprintf(&b, "Temperature: %.1f°C\n", s.Current.TemperatureC)
	fmt.Fprintf(&b, "Conditions: %s\n", description)
	fmt.Fprintf(&b, "Humidity: %d%%\n", s.Current.HumidityPct)
	fmt.Fprintf(&b, "Wind Speed: %.1f m/s\n", s.Current.WindSpeedMS)
	return b.String()
}

// titleCase uppercases the first letter of each word, matching how the
// OpenWeather lowercase descriptions ("scattered clouds") are displayed.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
