package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Adiiii-i/travara/internal/models/request_models"
	"github.com/Adiiii-i/travara/internal/models/response_models"
	"github.com/Adiiii-i/travara/pkg/utils"
)

type stubPlanner struct {
	plan   *response_models.PlanResponse
	err    error
	report response_models.ProvidersReport
}

func (s *stubPlanner) GeneratePlan(ctx context.Context, req request_models.PlanRequest) (*response_models.PlanResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

func (s *stubPlanner) Providers() response_models.ProvidersReport {
	return s.report
}

func planRouter(planner *stubPlanner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewPlanController(planner)
	r.POST("/plans", ctrl.GeneratePlan)
	r.GET("/providers", ctrl.ListProviders)
	return r
}

func postPlan(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validPlanBody = `{
	"source": "New York",
	"destination": "Paris",
	"start_date": "2026-09-01",
	"end_date": "2026-09-05"
}`

func TestGeneratePlanSuccess(t *testing.T) {
	planner := &stubPlanner{plan: &response_models.PlanResponse{
		Provider:     "ollama",
		Destination:  "Paris",
		DurationDays: 5,
		Itinerary:    "Day 1\nExplore",
	}}
	w := postPlan(t, planRouter(planner), validPlanBody)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("unexpected status %q", resp.Status)
	}
}

func TestGeneratePlanRejectsMalformedBody(t *testing.T) {
	planner := &stubPlanner{plan: &response_models.PlanResponse{}}
	w := postPlan(t, planRouter(planner), `{"source": 42}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGeneratePlanRejectsUnknownBudget(t *testing.T) {
	planner := &stubPlanner{plan: &response_models.PlanResponse{}}
	body := `{"source":"A","destination":"B","start_date":"2026-09-01","end_date":"2026-09-02","budget":"lavish"}`
	w := postPlan(t, planRouter(planner), body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGeneratePlanErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", utils.ErrEndBeforeStart, http.StatusBadRequest},
		{"no provider", utils.ErrNoProviderAvailable, http.StatusServiceUnavailable},
		{"generation fault", &utils.GenerationError{Provider: "ollama", Err: context.DeadlineExceeded}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postPlan(t, planRouter(&stubPlanner{err: tt.err}), validPlanBody)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestListProviders(t *testing.T) {
	planner := &stubPlanner{report: response_models.ProvidersReport{
		Providers: []response_models.ProviderStatus{
			{Name: "ollama", Available: true},
			{Name: "openai", Available: false, Reason: "OPENAI_API_KEY not found in environment variables"},
		},
		Failures: []response_models.ServiceFailure{
			{Service: "openai", Reason: "OPENAI_API_KEY not found in environment variables"},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/providers", nil)
	w := httptest.NewRecorder()
	planRouter(planner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data response_models.ProvidersReport `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Data.Providers) != 2 || len(resp.Data.Failures) != 1 {
		t.Errorf("unexpected report: %+v", resp.Data)
	}
}
