package request_models

// PlanRequest carries every trip parameter needed to generate an itinerary.
// Dates use the YYYY-MM-DD layout. Interests are free-form tags; the ones the
// original planner suggests are nature, food, culture, nightlife, adventure,
// shopping, history and beaches.
type PlanRequest struct {
	Source      string   `json:"source" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Budget      string   `json:"budget" binding:"omitempty,oneof=low medium high"`
	Interests   []string `json:"interests"`
	TravelType  string   `json:"travel_type" binding:"omitempty,oneof=solo couple friends family"`

	// Provider optionally pins the generation backend. Empty means "prefer the
	// local model when it is up, fall back to the hosted one".
	Provider string `json:"provider" binding:"omitempty,oneof=openai ollama"`
}
