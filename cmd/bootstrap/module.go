package bootstrap

import (
	"workshop-site/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	PromotionModule,
	components.PersistenceModule,
	components.SchedulerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
