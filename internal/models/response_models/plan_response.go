package response_models

// DaySection is one heading-delimited slice of generated itinerary text.
// Heading is a detected day label ("Day 1"), the synthetic "Overview" for
// leading unlabeled content, or empty when the whole text carried no day
// markers and is passed through as a single block.
type DaySection struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body"`
}

type PlanResponse struct {
	Provider     string `json:"provider"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DurationDays int    `json:"duration_days"`

	Itinerary string       `json:"itinerary"`
	Days      []DaySection `json:"days"`

	Attractions []PlaceRecord `json:"attractions,omitempty"`
	Restaurants []PlaceRecord `json:"restaurants,omitempty"`
	Cafes       []PlaceRecord `json:"cafes,omitempty"`

	Weather     *WeatherSummary `json:"weather,omitempty"`
	WeatherText string          `json:"weather_text,omitempty"`
}
