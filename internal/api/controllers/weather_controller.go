package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adiiii-i/travara/internal/models/response_models"
	"github.com/Adiiii-i/travara/internal/registry"
	"github.com/Adiiii-i/travara/internal/weather"
	"github.com/Adiiii-i/travara/pkg/utils"
)

type WeatherController struct {
	registry *registry.Registry
}

func NewWeatherController(reg *registry.Registry) *WeatherController {
	return &WeatherController{
		registry: reg,
	}
}

// GetWeather godoc
// @Summary Weather summary for a destination
// @Description Current conditions plus a multi-day forecast; absent data is reported, not an error
// @Tags Weather
// @Produce json
// @Param destination query string true "Destination city or country"
// @Param start query string false "Trip start date (YYYY-MM-DD)"
// @Param end query string false "Trip end date (YYYY-MM-DD)"
// @Success 200 {object} response_models.WeatherReport
// @Failure 400 {object} utils.APIResponse
// @Router /weather [get]
func (w *WeatherController) GetWeather(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	start := time.Now()
	end := start
	if s := c.Query("start"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		end = t
	}

	var summary *response_models.WeatherSummary
	if w.registry.Weather != nil {
		summary = w.registry.Weather.Summary(c.Request.Context(), destination, start, end)
	}
	report := response_models.WeatherReport{
		Summary: summary,
		Text:    weather.FormatSummary(summary),
	}
	utils.RespondSuccess(c, report, "Weather fetched successfully")
}
