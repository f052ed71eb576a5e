package response_models

// PlaceRecord is one normalized geo-enrichment result. Missing upstream
// fields are filled with explicit sentinels instead of dropping the record.
type PlaceRecord struct {
	Name     string `json:"name"`
	Rating   string `json:"rating"`
	Address  string `json:"address"`
	Category string `json:"category"`

	// PriceLevel is the 0-4 price tier, populated for restaurants only.
	PriceLevel *int `json:"price_level,omitempty"`

	PlaceID string `json:"place_id,omitempty"`
}
