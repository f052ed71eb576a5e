package services

import (
	"strings"

	"github.com/Adiiii-i/travara/internal/models/response_models"
)

// dayHeaderPrefixes are the case-insensitive line prefixes that mark the
// start of a new day section. The list is a heuristic, not a contract: the
// prompt asks the model for "Day 1, Day 2, etc. as headers" but nothing
// enforces it.
var dayHeaderPrefixes = []string{"day ", "**day ", "# day "}

func isDayHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)
	for _, prefix := range dayHeaderPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	// Markdown headings of any depth that mention a day also count.
	return strings.HasPrefix(trimmed, "#") && strings.Contains(lower, "day")
}

// cleanHeading strips markdown emphasis and heading punctuation from a
// detected header so it reads as a plain display label.
func cleanHeading(line string) string {
	line = strings.ReplaceAll(line, "#", "")
	line = strings.ReplaceAll(line, "**", "")
	return strings.TrimSpace(line)
}

// SplitDaySections turns generated itinerary text into ordered day sections.
// Text without any day marker is passed through as a single unlabeled block.
// When markers exist, content before the first one is grouped under a
// synthetic "Overview" heading. Sections keep source order; repeated day
// labels are not deduplicated.
func SplitDaySections(text string) []response_models.DaySection {
	lines := strings.Split(text, "\n")

	hasMarkers := false
	for _, line := range lines {
		if isDayHeader(line) {
			hasMarkers = true
			break
		}
	}
	if !hasMarkers {
		return []response_models.DaySection{{Body: text}}
	}

	var sections []response_models.DaySection
	var heading string
	var body []string
	open := false

	flush := func() {
		if open {
			sections = append(sections, response_models.DaySection{
				Heading: heading,
				Body:    strings.Join(body, "\n"),
			})
		}
	}

	for _, line := range lines {
		if isDayHeader(line) {
			flush()
			heading = cleanHeading(line)
			body = nil
			open = true
			continue
		}
		if !open {
			heading = "Overview"
			open = true
		}
		body = append(body, line)
	}
	flush()

	return sections
}
