package providers

import (
	"context"
	"time"
)

// Trip carries the validated trip parameters a provider turns into a prompt.
type Trip struct {
	Source      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      string
	Interests   []string
	TravelType  string
}

// Duration is the inclusive day count of the trip.
func (t Trip) Duration() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// Provider is a backend capable of generating itinerary text from structured
// trip parameters. Implementations fail with *utils.GenerationError on any
// downstream fault.
type Provider interface {
	Name() string
	GenerateItinerary(ctx context.Context, trip Trip) (string, error)
}
