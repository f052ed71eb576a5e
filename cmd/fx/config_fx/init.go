package config_fx

import (
	"go.uber.org/fx"

	"github.com/Adiiii-i/travara/internal/config"
)

var Module = fx.Provide(config.Load)
