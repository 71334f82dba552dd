package components

import (
	"workshop-site/internal/handler"
	"workshop-site/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewPromotionHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
