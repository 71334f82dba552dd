package components

import (
	"workshop-site/internal/infra/scheduler"
	"workshop-site/internal/usecase/queries"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		scheduler.NewPromotionRefresher,
		func(r *scheduler.PromotionRefresher) queries.StatusSource { return r },
	),
	fx.Invoke(registerRefresher),
)

func registerRefresher(lc fx.Lifecycle, r *scheduler.PromotionRefresher) {
	lc.Append(fx.Hook{
		OnStart: r.Start,
		OnStop:  r.Stop,
	})
}
