package providers

import (
	"errors"
	"testing"

	"github.com/Adiiii-i/travara/pkg/utils"
)

func TestNewOpenAIRejectsMissingKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"placeholder", "your_openai_api_key_here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOpenAI(tt.key)
			var cfgErr *utils.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Service != "openai" {
				t.Errorf("expected service openai, got %q", cfgErr.Service)
			}
		})
	}
}

func TestNewOpenAIAcceptsRealKey(t *testing.T) {
	p, err := NewOpenAI("sk-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("unexpected name %q", p.Name())
	}
}
