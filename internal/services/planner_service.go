package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Adiiii-i/travara/internal/models/request_models"
	"github.com/Adiiii-i/travara/internal/models/response_models"
	"github.com/Adiiii-i/travara/internal/places"
	"github.com/Adiiii-i/travara/internal/providers"
	"github.com/Adiiii-i/travara/internal/registry"
	"github.com/Adiiii-i/travara/internal/weather"
	"github.com/Adiiii-i/travara/pkg/utils"
)

type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.PlanResponse, error)
	Providers() response_models.ProvidersReport
}

type PlannerService struct {
	registry *registry.Registry
	logger   *zap.Logger
}

func NewPlannerService(reg *registry.Registry, logger *zap.Logger) PlannerServiceInterface {
	return &PlannerService{
		registry: reg,
		logger:   logger,
	}
}

// GeneratePlan runs the end-to-end request: validate, pick a provider,
// generate, then enrich. Validation and provider selection happen before any
// network call. A generation fault aborts the interaction; enrichment faults
// only omit their section of the response.
func (s *PlannerService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.PlanResponse, error) {
	trip, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	provider, err := s.selectProvider(req.Provider)
	if err != nil {
		return nil, err
	}

	s.logger.Info("generating itinerary",
		zap.String("provider", provider.Name()),
		zap.String("destination", trip.Destination),
		zap.Int("duration_days", trip.Duration()))

	itinerary, err := provider.GenerateItinerary(ctx, trip)
	if err != nil {
		return nil, err
	}

	resp := &response_models.PlanResponse{
		Provider:     provider.Name(),
		Source:       trip.Source,
		Destination:  trip.Destination,
		StartDate:    trip.StartDate.Format(utils.DateLayout),
		EndDate:      trip.EndDate.Format(utils.DateLayout),
		DurationDays: trip.Duration(),
		Itinerary:    itinerary,
		Days:         SplitDaySections(itinerary),
	}

	s.enrich(ctx, trip, resp)
	return resp, nil
}

// enrich fills the best-effort sections. The four lookups are independent and
// share no state, so they run concurrently; each one degrades to an absent
// section on its own.
func (s *PlannerService) enrich(ctx context.Context, trip providers.Trip, resp *response_models.PlanResponse) {
	var wg sync.WaitGroup

	if s.registry.Places != nil {
		targets := []struct {
			category places.Category
			out      *[]response_models.PlaceRecord
		}{
			{places.CategoryAttraction, &resp.Attractions},
			{places.CategoryRestaurant, &resp.Restaurants},
			{places.CategoryCafe, &resp.Cafes},
		}
		for _, t := range targets {
			wg.Add(1)
			go func(category places.Category, out *[]response_models.PlaceRecord) {
				defer wg.Done()
				*out = s.registry.Places.Search(ctx, trip.Destination, category, places.DefaultLimit)
			}(t.category, t.out)
		}
	}

	if s.registry.Weather != nil && s.registry.Weather.Enabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			summary := s.registry.Weather.Summary(ctx, trip.Destination, trip.StartDate, trip.EndDate)
			if summary != nil {
				resp.Weather = summary
				resp.WeatherText = weather.FormatSummary(summary)
			}
		}()
	}

	wg.Wait()
}

func (s *PlannerService) validate(req request_models.PlanRequest) (providers.Trip, error) {
	if strings.TrimSpace(req.Source) == "" {
		return providers.Trip{}, utils.ErrSourceRequired
	}
	if strings.TrimSpace(req.Destination) == "" {
		return providers.Trip{}, utils.ErrDestinationRequired
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return providers.Trip{}, err
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return providers.Trip{}, err
	}
	if end.Before(start) {
		return providers.Trip{}, utils.ErrEndBeforeStart
	}

	budget := req.Budget
	if budget == "" {
		budget = "medium"
	}
	travelType := req.TravelType
	if travelType == "" {
		travelType = "solo"
	}

	return providers.Trip{
		Source:      strings.TrimSpace(req.Source),
		Destination: strings.TrimSpace(req.Destination),
		StartDate:   start,
		EndDate:     end,
		Budget:      budget,
		Interests:   req.Interests,
		TravelType:  travelType,
	}, nil
}

// selectProvider honors an explicit preference when that provider survived
// registry construction; with no preference the local model wins over the
// hosted one. Selection never touches the network.
func (s *PlannerService) selectProvider(preference string) (providers.Provider, error) {
	reg := s.registry
	switch strings.ToLower(strings.TrimSpace(preference)) {
	case "ollama":
		if reg.Ollama != nil {
			return reg.Ollama, nil
		}
		return nil, fmt.Errorf("ollama is not available: %w", utils.ErrNoProviderAvailable)
	case "openai":
		if reg.OpenAI != nil {
			return reg.OpenAI, nil
		}
		return nil, fmt.Errorf("openai is not available: %w", utils.ErrNoProviderAvailable)
	case "":
		if reg.Ollama != nil {
			return reg.Ollama, nil
		}
		if reg.OpenAI != nil {
			return reg.OpenAI, nil
		}
		return nil, utils.ErrNoProviderAvailable
	default:
		return nil, fmt.Errorf("%q: %w", preference, utils.ErrUnknownProvider)
	}
}

func (s *PlannerService) Providers() response_models.ProvidersReport {
	return response_models.ProvidersReport{
		Providers: s.registry.ProviderStatuses(),
		Failures:  s.registry.Failures,
	}
}
