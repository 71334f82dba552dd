package bootstrap

import (
	"log/slog"

	"workshop-site/internal/domain/promotion"
	"workshop-site/internal/pkg/config"
	"workshop-site/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var PromotionModule = fx.Module("promotion",
	fx.Provide(
		NewPromotionRule,
	),
)

// NewPromotionRule builds the weekly rule from PROMO_* settings. Any invalid
// value aborts startup.
func NewPromotionRule(cfg config.PromotionConfig, logger *slog.Logger) (*promotion.Rule, error) {
	start, err := promotion.ParseWeeklyPoint(cfg.WindowStart)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid PROMO_WINDOW_START"), errs.ErrInvalidConfiguration)
	}
	end, err := promotion.ParseWeeklyPoint(cfg.WindowEnd)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid PROMO_WINDOW_END"), errs.ErrInvalidConfiguration)
	}
	promoPrice, err := decimal.NewFromString(cfg.PromoPrice)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid PROMO_PRICE"), errs.ErrInvalidConfiguration)
	}
	regularPrice, err := decimal.NewFromString(cfg.RegularPrice)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid PROMO_REGULAR_PRICE"), errs.ErrInvalidConfiguration)
	}

	rule, err := promotion.NewRule(promotion.RuleParams{
		Timezone:     cfg.Timezone,
		Start:        start,
		End:          end,
		PromoPrice:   promoPrice,
		RegularPrice: regularPrice,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid promotion rule"), errs.ErrInvalidConfiguration)
	}

	logger.Info("Promotion rule loaded",
		slog.String("timezone", rule.Location().String()),
		slog.String("window_start", rule.Start().String()),
		slog.String("window_end", rule.End().String()),
		slog.String("promo_price", rule.PromoPrice().StringFixed(2)),
		slog.String("regular_price", rule.RegularPrice().StringFixed(2)))
	return rule, nil
}
