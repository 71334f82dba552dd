//go:build unit

package bootstrap_test

import (
	"log/slog"
	"testing"

	"workshop-site/cmd/bootstrap"
	"workshop-site/internal/domain/promotion"
	"workshop-site/internal/pkg/config"
	"workshop-site/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromotionRule(t *testing.T) {
	t.Run("success: defaults build the weekend rule", func(t *testing.T) {
		rule, err := bootstrap.NewPromotionRule(config.NewTestConfig().Promotion, slog.Default())
		require.NoError(t, err)

		assert.Equal(t, "America/Chicago", rule.Location().String())
		assert.Equal(t, "Friday 09:00", rule.Start().String())
		assert.Equal(t, "Sunday 23:59", rule.End().String())
		assert.Equal(t, "179.00", rule.PromoPrice().StringFixed(2))
		assert.Equal(t, "219.00", rule.RegularPrice().StringFixed(2))
	})

	testCases := []struct {
		name   string
		mutate func(c *config.PromotionConfig)
		mark   error
	}{
		{name: "bad start", mutate: func(c *config.PromotionConfig) { c.WindowStart = "funday 09:00" }},
		{name: "bad end clock", mutate: func(c *config.PromotionConfig) { c.WindowEnd = "sunday 24:00" }},
		{name: "bad promo price", mutate: func(c *config.PromotionConfig) { c.PromoPrice = "free" }},
		{name: "bad regular price", mutate: func(c *config.PromotionConfig) { c.RegularPrice = "" }},
		{name: "unknown timezone", mutate: func(c *config.PromotionConfig) { c.Timezone = "Mars/Olympus" }, mark: promotion.ErrTimezoneResolution},
		{
			name: "inverted window",
			mutate: func(c *config.PromotionConfig) {
				c.WindowStart = "sunday 23:59"
				c.WindowEnd = "friday 09:00"
			},
			mark: promotion.ErrInvalidRule,
		},
		{name: "negative price", mutate: func(c *config.PromotionConfig) { c.PromoPrice = "-1" }, mark: promotion.ErrInvalidRule},
	}

	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			cfg := config.NewTestConfig().Promotion
			tc.mutate(&cfg)

			_, err := bootstrap.NewPromotionRule(cfg, slog.Default())
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrInvalidConfiguration))
			if tc.mark != nil {
				assert.True(t, errs.Is(err, tc.mark))
			}
		})
	}
}
