package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"workshop-site/internal/domain/promotion"
	"workshop-site/internal/pkg/clock"
	"workshop-site/internal/pkg/config"
	"workshop-site/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PromotionRefresher re-evaluates the promotion rule on a cron schedule and
// keeps the most recent status for the health endpoint. Request paths never
// read it; they evaluate the rule themselves.
type PromotionRefresher struct {
	rule     *promotion.Rule
	clock    clock.Clock
	schedule cron.Schedule
	cron     *cron.Cron
	latest   atomic.Pointer[promotion.Status]
}

func NewPromotionRefresher(rule *promotion.Rule, clk clock.Clock, cfg config.PromotionConfig) (*PromotionRefresher, error) {
	schedule, err := cron.ParseStandard(cfg.RefreshSchedule)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "parse refresh schedule %q", cfg.RefreshSchedule), errs.ErrInvalidConfiguration)
	}

	return &PromotionRefresher{
		rule:     rule,
		clock:    clk,
		schedule: schedule,
		cron:     cron.New(cron.WithLocation(rule.Location())),
	}, nil
}

// Start evaluates once synchronously so Latest has a value before the first
// tick, then starts the schedule.
func (r *PromotionRefresher) Start(_ context.Context) error {
	r.Refresh()
	r.cron.Schedule(r.schedule, cron.FuncJob(r.Refresh))
	r.cron.Start()
	slog.Info("Promotion refresher started", slog.String("next_run", r.nextRun().Format(time.RFC3339)))
	return nil
}

func (r *PromotionRefresher) Stop(ctx context.Context) error {
	stopped := r.cron.Stop()
	select {
	case <-stopped.Done():
		slog.Info("Promotion refresher stopped")
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "waiting for refresher job to finish")
	}
}

// Refresh evaluates the rule at the current instant and swaps in the result.
func (r *PromotionRefresher) Refresh() {
	status := r.rule.Evaluate(r.clock.Now())
	prev := r.latest.Swap(&status)

	switch {
	case prev == nil:
		slog.Info("Promotion status initialized",
			slog.Bool("active", status.Active),
			slog.String("price", status.CurrentPrice.String()),
			slog.Time("transition_at", status.Transition()))
	case prev.Active != status.Active:
		event := "closed"
		if status.Active {
			event = "opened"
		}
		slog.Info("Promotion window "+event,
			slog.String("price", status.CurrentPrice.String()),
			slog.Time("transition_at", status.Transition()),
			slog.Int("hours_until_transition", status.HoursUntilTransition))
	default:
		slog.Debug("Promotion status refreshed",
			slog.Bool("active", status.Active),
			slog.Int("hours_until_transition", status.HoursUntilTransition))
	}
}

// Latest returns the last evaluated status, or false before the first
// evaluation.
func (r *PromotionRefresher) Latest() (promotion.Status, bool) {
	s := r.latest.Load()
	if s == nil {
		return promotion.Status{}, false
	}
	return *s, true
}

func (r *PromotionRefresher) nextRun() time.Time {
	return r.schedule.Next(r.clock.Now().In(r.rule.Location()))
}
