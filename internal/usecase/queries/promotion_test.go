//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"workshop-site/internal/domain/promotion"
	"workshop-site/internal/pkg/clock"
	"workshop-site/internal/pkg/config"
	"workshop-site/internal/pkg/errs"
	"workshop-site/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekendRule(t *testing.T) *promotion.Rule {
	t.Helper()
	start, err := promotion.ParseWeeklyPoint("friday 09:00")
	require.NoError(t, err)
	end, err := promotion.ParseWeeklyPoint("sunday 23:59")
	require.NoError(t, err)

	rule, err := promotion.NewRule(promotion.RuleParams{
		Timezone:     "America/Chicago",
		Start:        start,
		End:          end,
		PromoPrice:   decimal.NewFromInt(179),
		RegularPrice: decimal.NewFromInt(219),
	})
	require.NoError(t, err)
	return rule
}

// Saturday 2026-10-17 12:00 CDT
var saturdayNoon = time.Date(2026, 10, 17, 17, 0, 0, 0, time.UTC)

func TestPromotionQueries_At(t *testing.T) {
	rule := weekendRule(t)
	q := queries.NewPromotionQueries(rule, clock.NewMockClock(saturdayNoon), config.NewTestConfig().Promotion)
	ctx := context.Background()

	t.Run("active window", func(t *testing.T) {
		view, err := q.At(ctx, saturdayNoon)
		require.NoError(t, err)

		assert.True(t, view.Active)
		assert.Equal(t, "179.00", view.CurrentPrice)
		assert.Equal(t, "179.00", view.PromoPrice)
		assert.Equal(t, "219.00", view.RegularPrice)
		assert.Equal(t, "USD", view.Currency)
		assert.Equal(t, "America/Chicago", view.Timezone)
		assert.Equal(t, "Friday 09:00", view.WindowStart)
		assert.Equal(t, "Sunday 23:59", view.WindowEnd)
		assert.Nil(t, view.OpensAt)
		require.NotNil(t, view.ClosesAt)
		assert.True(t, view.ClosesAt.Equal(time.Date(2026, 10, 19, 4, 59, 0, 0, time.UTC)))
		assert.Equal(t, 36, view.HoursUntilTransition)
	})

	t.Run("inactive window", func(t *testing.T) {
		// Tuesday 2026-10-20 09:00 CDT
		view, err := q.At(ctx, time.Date(2026, 10, 20, 14, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.False(t, view.Active)
		assert.Equal(t, "219.00", view.CurrentPrice)
		assert.Nil(t, view.ClosesAt)
		require.NotNil(t, view.OpensAt)
		assert.True(t, view.OpensAt.Equal(time.Date(2026, 10, 23, 14, 0, 0, 0, time.UTC)))
		assert.Equal(t, 72, view.HoursUntilTransition)
	})

	t.Run("zero time is rejected", func(t *testing.T) {
		_, err := q.At(ctx, time.Time{})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidEvaluationTime))
	})
}

func TestPromotionQueries_Current(t *testing.T) {
	rule := weekendRule(t)
	ctx := context.Background()

	t.Run("evaluates at the clock", func(t *testing.T) {
		q := queries.NewPromotionQueries(rule, clock.NewMockClock(saturdayNoon), config.NewTestConfig().Promotion)

		view, err := q.Current(ctx)
		require.NoError(t, err)
		assert.True(t, view.Active)
		assert.True(t, view.EvaluatedAt.Equal(saturdayNoon))
	})

	t.Run("follows the clock past the window boundary", func(t *testing.T) {
		// Sunday 2026-10-18 23:59 CDT, the last active minute.
		clk := clock.NewMockClock(time.Date(2026, 10, 19, 4, 59, 0, 0, time.UTC))
		q := queries.NewPromotionQueries(rule, clk, config.NewTestConfig().Promotion)

		before, err := q.Current(ctx)
		require.NoError(t, err)
		assert.True(t, before.Active)
		assert.Equal(t, "179.00", before.CurrentPrice)

		clk.Add(90 * time.Second)

		after, err := q.Current(ctx)
		require.NoError(t, err)
		want := rule.Evaluate(clk.Now())
		assert.Equal(t, want.Active, after.Active)
		assert.False(t, after.Active)
		assert.Equal(t, "219.00", after.CurrentPrice)
		assert.Nil(t, after.ClosesAt)
		require.NotNil(t, after.OpensAt)
		assert.True(t, after.OpensAt.Equal(want.OpensAt))
		assert.True(t, after.EvaluatedAt.Equal(clk.Now()))
	})
}
