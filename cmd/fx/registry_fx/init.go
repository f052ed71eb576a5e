package registry_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Adiiii-i/travara/internal/config"
	"github.com/Adiiii-i/travara/internal/registry"
)

var Module = fx.Provide(provideRegistry)

// provideRegistry never fails: broken dependencies are recorded in the
// registry instead of aborting startup.
func provideRegistry(cfg config.Config, logger *zap.Logger) *registry.Registry {
	return registry.InitAll(cfg, logger)
}
