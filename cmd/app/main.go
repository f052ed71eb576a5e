package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Adiiii-i/travara/cmd/fx/config_fx"
	"github.com/Adiiii-i/travara/cmd/fx/logger_fx"
	"github.com/Adiiii-i/travara/cmd/fx/planner_fx"
	"github.com/Adiiii-i/travara/cmd/fx/registry_fx"
	"github.com/Adiiii-i/travara/internal/api/controllers"
	"github.com/Adiiii-i/travara/internal/config"
	"github.com/Adiiii-i/travara/pkg/middleware"
)

func main() {
	app := fx.New(
		logger_fx.Module,
		config_fx.Module,
		registry_fx.Module,
		planner_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	planController *controllers.PlanController,
	placesController *controllers.PlacesController,
	weatherController *controllers.WeatherController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, planController, placesController, weatherController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	placesController *controllers.PlacesController,
	weatherController *controllers.WeatherController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.POST("/plans", planController.GeneratePlan)
	api.GET("/providers", planController.ListProviders)
	api.GET("/places", placesController.GetPlaces)
	api.GET("/weather", weatherController.GetWeather)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting HTTP server", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
