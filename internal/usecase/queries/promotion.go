package queries

//go:generate mockgen -source=promotion.go -destination=../../../tests/mock/queries/promotion_mock.go -package=queriesmock

import (
	"context"
	"time"

	"workshop-site/internal/domain/promotion"
	"workshop-site/internal/pkg/clock"
	"workshop-site/internal/pkg/config"
	"workshop-site/internal/pkg/errs"
)

// PromotionView is the read model of the weekly promotion at one instant.
// Prices are fixed two-decimal strings; exactly one of OpensAt and ClosesAt
// is set.
type PromotionView struct {
	Active               bool
	CurrentPrice         string
	PromoPrice           string
	RegularPrice         string
	Currency             string
	OpensAt              *time.Time
	ClosesAt             *time.Time
	HoursUntilTransition int
	Timezone             string
	WindowStart          string
	WindowEnd            string
	EvaluatedAt          time.Time
}

type PromotionQueries interface {
	Current(ctx context.Context) (*PromotionView, error)
	At(ctx context.Context, at time.Time) (*PromotionView, error)
}

// StatusSource hands out the most recent refreshed status, if any. It is a
// liveness signal only; prices are always evaluated against the clock.
type StatusSource interface {
	Latest() (promotion.Status, bool)
}

type promotionQueriesImpl struct {
	rule     *promotion.Rule
	clock    clock.Clock
	currency string
}

func NewPromotionQueries(rule *promotion.Rule, clk clock.Clock, cfg config.PromotionConfig) PromotionQueries {
	return &promotionQueriesImpl{
		rule:     rule,
		clock:    clk,
		currency: cfg.Currency,
	}
}

// Current evaluates at the clock's now on every call, so the price flips
// the moment the window does.
func (q *promotionQueriesImpl) Current(ctx context.Context) (*PromotionView, error) {
	return q.At(ctx, q.clock.Now())
}

func (q *promotionQueriesImpl) At(_ context.Context, at time.Time) (*PromotionView, error) {
	if at.IsZero() {
		return nil, errs.Markf(errs.ErrInvalidEvaluationTime, "evaluation time must be set")
	}
	return q.toView(q.rule.Evaluate(at)), nil
}

func (q *promotionQueriesImpl) toView(s promotion.Status) *PromotionView {
	v := &PromotionView{
		Active:               s.Active,
		CurrentPrice:         s.CurrentPrice.StringFixed(2),
		PromoPrice:           q.rule.PromoPrice().StringFixed(2),
		RegularPrice:         q.rule.RegularPrice().StringFixed(2),
		Currency:             q.currency,
		HoursUntilTransition: s.HoursUntilTransition,
		Timezone:             q.rule.Location().String(),
		WindowStart:          q.rule.Start().String(),
		WindowEnd:            q.rule.End().String(),
		EvaluatedAt:          s.EvaluatedAt,
	}
	if s.Active {
		closesAt := s.ClosesAt
		v.ClosesAt = &closesAt
	} else {
		opensAt := s.OpensAt
		v.OpensAt = &opensAt
	}
	return v
}
