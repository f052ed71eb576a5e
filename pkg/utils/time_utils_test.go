package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"", "01/09/2026", "2026-9-1", "September 1, 2026"} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", s, err)
		}
	}
}

func TestTripDurationInclusive(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want int
	}{
		{"same day", 0, 1},
		{"overnight", 1, 2},
		{"five days", 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TripDuration(start, start.AddDate(0, 0, tt.days)); got != tt.want {
				t.Errorf("TripDuration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatDateLong(t *testing.T) {
	d := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDateLong(d); got != "March 5, 2026" {
		t.Errorf("FormatDateLong = %q", got)
	}
}

func TestIsValidationError(t *testing.T) {
	for _, err := range []error{
		ErrSourceRequired,
		ErrDestinationRequired,
		ErrInvalidDate,
		ErrEndBeforeStart,
		ErrUnknownProvider,
	} {
		if !IsValidationError(err) {
			t.Errorf("expected %v to be a validation error", err)
		}
	}

	if IsValidationError(ErrNoProviderAvailable) {
		t.Errorf("availability faults are not validation errors")
	}
	genErr := &GenerationError{Provider: "openai", Err: errors.New("boom")}
	if IsValidationError(genErr) {
		t.Errorf("generation faults are not validation errors")
	}
}

func TestGenerationErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &GenerationError{Provider: "ollama", Err: cause}
	if !errors.Is(err, cause) {
		t.Errorf("expected the cause to be reachable through Unwrap")
	}
}
