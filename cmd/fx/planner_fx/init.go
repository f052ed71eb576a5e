package planner_fx

import (
	"go.uber.org/fx"

	"github.com/Adiiii-i/travara/internal/api/controllers"
	"github.com/Adiiii-i/travara/internal/services"
)

var Module = fx.Provide(
	services.NewPlannerService,
	controllers.NewPlanController,
	controllers.NewPlacesController,
	controllers.NewWeatherController,
)
