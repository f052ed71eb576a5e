package utils

import (
	"errors"
	"fmt"
)

// Validation errors. These are raised before any network call is made and are
// always correctable by the caller.
var (
	ErrSourceRequired      = errors.New("source city is required")
	ErrDestinationRequired = errors.New("destination is required")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrEndBeforeStart      = errors.New("end date must be on or after start date")
	ErrUnknownProvider     = errors.New("unknown provider")
)

// ErrNoProviderAvailable is returned when neither itinerary provider survived
// registry initialization, or when an explicitly requested provider is down.
var ErrNoProviderAvailable = errors.New("no itinerary provider is available")

// ConfigurationError reports that a service could not be constructed, usually
// because of a missing credential or an unreachable local endpoint. It is
// captured by the registry and surfaced as a warning, never as a startup abort.
type ConfigurationError struct {
	Service string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Reason)
}

// GenerationError wraps any fault that occurred while a provider was
// generating an itinerary: transport errors, timeouts, non-success statuses
// or malformed responses.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: error generating itinerary: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsValidationError reports whether err belongs to the user-correctable
// validation class.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSourceRequired) ||
		errors.Is(err, ErrDestinationRequired) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrEndBeforeStart) ||
		errors.Is(err, ErrUnknownProvider)
}
