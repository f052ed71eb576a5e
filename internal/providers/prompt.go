package providers

import (
	"fmt"
	"strings"

	"github.com/Adiiii-i/travara/pkg/utils"
)

// SystemPrompt is the fixed system role shared by both providers.
const SystemPrompt = "You are a professional travel planner with expertise in creating detailed, practical, and budget-conscious itineraries."

// BuildPrompt renders the user prompt embedding every trip field. The closing
// formatting instructions ask for "Day 1, Day 2, etc. as headers"; day-section
// splitting downstream depends on the model honoring that convention, so the
// wording here must stay in sync with the header patterns the formatter
// detects.
func BuildPrompt(trip Trip) string {
	interests := strings.Join(trip.Interests, ", ")
	if interests == "" {
		interests = "general travel"
	}

	return fmt.Sprintf(`You are an expert travel planner. Create a detailed %d-day travel itinerary for a trip from %s to %s.

Travel Details:
- Travel Dates: %s to %s
- Budget Level: %s
- Interests: %s
- Travel Type: %s

Please provide a day-wise itinerary that includes:
1. Daily schedule with time slots (morning, afternoon, evening)
2. Specific activities and attractions to visit
3. Estimated daily expenses in USD (based on %s budget)
4. Food recommendations (breakfast, lunch, dinner) with local specialties
5. Local travel tips
6. Safety tips specific to %s

Format the response clearly with:
- Day 1, Day 2, etc. as headers
- Use bullet points for activities
- Keep it concise but informative
- Make it practical and actionable

Focus on authentic experiences that match the traveler's interests and budget level.`,
		trip.Duration(), trip.Source, trip.Destination,
		utils.FormatDateLong(trip.StartDate), utils.FormatDateLong(trip.EndDate),
		trip.Budget, interests, trip.TravelType,
		trip.Budget, trip.Destination)
}
