// Package registry constructs every external-service client exactly once per
// process, isolating failures so one broken dependency never prevents the
// others from initializing or the application from starting.
package registry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Adiiii-i/travara/internal/config"
	"github.com/Adiiii-i/travara/internal/models/response_models"
	"github.com/Adiiii-i/travara/internal/places"
	"github.com/Adiiii-i/travara/internal/providers"
	"github.com/Adiiii-i/travara/internal/weather"
)

// PlaceSearcher is the geo-enrichment capability the orchestrator depends on.
type PlaceSearcher interface {
	Search(ctx context.Context, destination string, category places.Category, limit int) []response_models.PlaceRecord
}

// WeatherSource is the weather capability the orchestrator depends on.
type WeatherSource interface {
	Enabled() bool
	Summary(ctx context.Context, destination string, start, end time.Time) *response_models.WeatherSummary
}

// Registry holds the per-process service slots. A nil slot means construction
// failed; the matching cause is in Failures. The registry is immutable after
// InitAll and is passed by reference into the orchestrator, so a test can
// inject fakes by filling the fields directly.
type Registry struct {
	OpenAI  providers.Provider
	Ollama  providers.Provider
	Places  PlaceSearcher
	Weather WeatherSource

	// Failures lists construction failures in attempt order:
	// openai, ollama, places.
	Failures []response_models.ServiceFailure
}

// InitAll attempts construction of all four clients independently. It never
// returns an error: a failed slot stays nil and the cause is recorded. The
// weather client is the deliberate exception to fail-at-construction - it
// always builds and degrades at call time when no credential is configured.
func InitAll(cfg config.Config, logger *zap.Logger) *Registry {
	reg := &Registry{}

	if p, err := providers.NewOpenAI(cfg.OpenAIAPIKey); err != nil {
		reg.record(logger, "openai", err)
	} else {
		reg.OpenAI = p
	}

	if p, err := providers.NewOllama(cfg.OllamaBaseURL, cfg.OllamaModel); err != nil {
		reg.record(logger, "ollama", err)
	} else {
		reg.Ollama = p
	}

	if c, err := places.NewClient(cfg.GooglePlacesAPIKey, logger); err != nil {
		reg.record(logger, "places", err)
	} else {
		reg.Places = c
	}

	reg.Weather = weather.NewClient(cfg.OpenWeatherAPIKey, logger)
	if cfg.OpenWeatherAPIKey == "" {
		logger.Info("weather credential not configured, summaries will be absent")
	}

	return reg
}

func (r *Registry) record(logger *zap.Logger, service string, err error) {
	logger.Warn("service unavailable", zap.String("service", service), zap.Error(err))
	r.Failures = append(r.Failures, response_models.ServiceFailure{
		Service: service,
		Reason:  err.Error(),
	})
}

// FailureReason returns the recorded cause for a service, or empty.
func (r *Registry) FailureReason(service string) string {
	for _, f := range r.Failures {
		if f.Service == service {
			return f.Reason
		}
	}
	return ""
}

// ProviderStatuses reports both generation backends with their availability
// fixed at construction time.
func (r *Registry) ProviderStatuses() []response_models.ProviderStatus {
	return []response_models.ProviderStatus{
		{Name: "ollama", Available: r.Ollama != nil, Reason: r.FailureReason("ollama")},
		{Name: "openai", Available: r.OpenAI != nil, Reason: r.FailureReason("openai")},
	}
}
