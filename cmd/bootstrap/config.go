package bootstrap

import (
	"workshop-site/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.PromotionConfig { return cfg.Promotion },
		func(cfg config.Config) config.CatalogConfig { return cfg.Catalog },
	),
)
