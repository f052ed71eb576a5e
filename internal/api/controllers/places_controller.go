package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Adiiii-i/travara/internal/places"
	"github.com/Adiiii-i/travara/internal/registry"
	"github.com/Adiiii-i/travara/pkg/utils"
)

type PlacesController struct {
	registry *registry.Registry
}

func NewPlacesController(reg *registry.Registry) *PlacesController {
	return &PlacesController{
		registry: reg,
	}
}

// GetPlaces godoc
// @Summary Nearby places for a destination
// @Description Geocode the destination and return ranked nearby places for one category
// @Tags Places
// @Produce json
// @Param destination query string true "Destination city or country"
// @Param category query string false "attraction | restaurant | cafe" default(attraction)
// @Param limit query int false "Maximum results" default(5) minimum(1) maximum(20)
// @Success 200 {array} response_models.PlaceRecord
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /places [get]
func (p *PlacesController) GetPlaces(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	category, ok := places.ParseCategory(c.DefaultQuery("category", string(places.CategoryAttraction)))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category (must be attraction, restaurant or cafe)")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 20 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-20)")
		return
	}

	if p.registry.Places == nil {
		utils.RespondError(c, http.StatusServiceUnavailable, "Places service is not available")
		return
	}

	records := p.registry.Places.Search(c.Request.Context(), destination, category, limit)
	utils.RespondSuccess(c, records, "Places fetched successfully")
}
