package registry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Adiiii-i/travara/internal/config"
)

func TestInitAllRecordsFailuresWithoutAborting(t *testing.T) {
	cfg := config.Config{
		// Port 1 is never listening; the Ollama probe fails fast.
		OllamaBaseURL: "http://127.0.0.1:1",
		OllamaModel:   "llama3.2",
	}

	reg := InitAll(cfg, zap.NewNop())

	if reg.OpenAI != nil || reg.Ollama != nil || reg.Places != nil {
		t.Errorf("expected nil slots for failed services: %+v", reg)
	}
	if reg.Weather == nil {
		t.Fatal("expected weather client to construct without a credential")
	}
	if reg.Weather.Enabled() {
		t.Errorf("expected weather to report disabled")
	}

	want := []string{"openai", "ollama", "places"}
	if len(reg.Failures) != len(want) {
		t.Fatalf("expected %d failures, got %+v", len(want), reg.Failures)
	}
	for i, service := range want {
		if reg.Failures[i].Service != service {
			t.Errorf("failure %d: expected %q, got %q", i, service, reg.Failures[i].Service)
		}
		if reg.Failures[i].Reason == "" {
			t.Errorf("failure %d: expected a reason", i)
		}
	}
}

func TestInitAllOllamaReachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	cfg := config.Config{OllamaBaseURL: ts.URL, OllamaModel: "llama3.2"}
	reg := InitAll(cfg, zap.NewNop())

	if reg.Ollama == nil {
		t.Fatal("expected Ollama slot to be populated")
	}
	if reg.Ollama.Name() != "ollama" {
		t.Errorf("unexpected provider name %q", reg.Ollama.Name())
	}
	if reason := reg.FailureReason("ollama"); reason != "" {
		t.Errorf("expected no recorded failure, got %q", reason)
	}
}

func TestInitAllRejectsPlaceholderKeys(t *testing.T) {
	cfg := config.Config{
		OpenAIAPIKey:       "your_openai_api_key_here",
		GooglePlacesAPIKey: "your_google_places_api_key_here",
		OllamaBaseURL:      "http://127.0.0.1:1",
	}

	reg := InitAll(cfg, zap.NewNop())

	if reg.OpenAI != nil {
		t.Errorf("expected placeholder OpenAI key to be rejected")
	}
	if reg.Places != nil {
		t.Errorf("expected placeholder Places key to be rejected")
	}
	if reason := reg.FailureReason("openai"); !strings.Contains(reason, "OPENAI_API_KEY") {
		t.Errorf("unexpected openai reason %q", reason)
	}
}

func TestProviderStatusesOrder(t *testing.T) {
	cfg := config.Config{
		OpenAIAPIKey:  "sk-test",
		OllamaBaseURL: "http://127.0.0.1:1",
	}

	reg := InitAll(cfg, zap.NewNop())
	statuses := reg.ProviderStatuses()

	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Name != "ollama" || statuses[0].Available {
		t.Errorf("expected ollama listed first and unavailable, got %+v", statuses[0])
	}
	if statuses[0].Reason == "" {
		t.Errorf("expected a reason for the unavailable provider")
	}
	if statuses[1].Name != "openai" || !statuses[1].Available {
		t.Errorf("expected openai available, got %+v", statuses[1])
	}
}
