package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adiiii-i/travara/internal/models/request_models"
	"github.com/Adiiii-i/travara/internal/services"
	"github.com/Adiiii-i/travara/pkg/utils"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlanController(plannerService services.PlannerServiceInterface) *PlanController {
	return &PlanController{
		plannerService: plannerService,
	}
}

// GeneratePlan godoc
// @Summary Generate a travel itinerary
// @Description Generate a personalized day-wise itinerary plus best-effort places and weather enrichment
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Trip parameters"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := p.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary generated successfully")
}

// ListProviders godoc
// @Summary List generation providers
// @Description Report both providers with availability fixed at startup, plus any initialization failures
// @Tags Plans
// @Produce json
// @Success 200 {object} response_models.ProvidersReport
// @Router /providers [get]
func (p *PlanController) ListProviders(c *gin.Context) {
	utils.RespondSuccess(c, p.plannerService.Providers(), "Providers fetched successfully")
}
