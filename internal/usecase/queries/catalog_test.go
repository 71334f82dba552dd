//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"workshop-site/internal/domain/catalog"
	"workshop-site/internal/infra"
	"workshop-site/internal/pkg/errs"
	"workshop-site/internal/usecase/queries"
	"workshop-site/tests/common/builder"
	queriesmock "workshop-site/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogQueries_ListCities(t *testing.T) {
	ctx := context.Background()

	t.Run("success: summarizes every city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		promos := queriesmock.NewMockPromotionQueries(ctrl)

		austin, err := builder.NewCityBuilder().BuildDomain()
		require.NoError(t, err)
		denver, err := builder.NewCityBuilder().With(func(b *builder.CityBuilder) {
			b.Slug = "denver"
			b.Name = "Denver"
			b.Timezone = "America/Denver"
			b.Classes = b.Classes[:1]
		}).BuildDomain()
		require.NoError(t, err)

		store.EXPECT().FindAll(gomock.Any()).Return([]*catalog.City{austin, denver}, nil).Times(1)

		views, err := queries.NewCatalogQueries(store, promos).ListCities(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, &queries.CitySummaryView{Slug: "austin", Name: "Austin", Timezone: "America/Chicago", ClassCount: 2}, views[0])
		assert.Equal(t, &queries.CitySummaryView{Slug: "denver", Name: "Denver", Timezone: "America/Denver", ClassCount: 1}, views[1])
	})

	t.Run("error: store failure is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		storeErr := errors.New("boom")
		store.EXPECT().FindAll(gomock.Any()).Return(nil, storeErr).Times(1)

		_, err := queries.NewCatalogQueries(store, queriesmock.NewMockPromotionQueries(ctrl)).ListCities(ctx)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestCatalogQueries_GetCity(t *testing.T) {
	ctx := context.Background()

	promoView := func(price string, active bool) *queries.PromotionView {
		return &queries.PromotionView{Active: active, CurrentPrice: price, Currency: "USD"}
	}

	t.Run("success: promo-eligible classes follow the promotion price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		promos := queriesmock.NewMockPromotionQueries(ctrl)

		austin, err := builder.NewCityBuilder().BuildDomain()
		require.NoError(t, err)

		store.EXPECT().FindBySlug(gomock.Any(), "austin").Return(austin, nil).Times(1)
		promos.EXPECT().Current(gomock.Any()).Return(promoView("179.00", true), nil).Times(1)

		view, err := queries.NewCatalogQueries(store, promos).GetCity(ctx, "austin")
		require.NoError(t, err)

		assert.Equal(t, "austin", view.Slug)
		assert.True(t, view.Promotion.Active)
		require.Len(t, view.Classes, 2)

		wheel := view.Classes[0]
		assert.Equal(t, "wheel-throwing-101", wheel.Slug)
		assert.Equal(t, "179.00", wheel.Price)
		assert.Equal(t, "USD", wheel.Currency)
		assert.Equal(t, "acuity", wheel.Provider)

		painting := view.Classes[1]
		assert.Equal(t, "95.00", painting.Price)
		assert.Equal(t, "eventbrite", painting.Provider)
		assert.Equal(t, austin.Classes()[1].ID(), painting.ID)
	})

	t.Run("success: regular price outside the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		promos := queriesmock.NewMockPromotionQueries(ctrl)

		austin, err := builder.NewCityBuilder().BuildDomain()
		require.NoError(t, err)

		store.EXPECT().FindBySlug(gomock.Any(), "austin").Return(austin, nil).Times(1)
		promos.EXPECT().Current(gomock.Any()).Return(promoView("219.00", false), nil).Times(1)

		view, err := queries.NewCatalogQueries(store, promos).GetCity(ctx, "austin")
		require.NoError(t, err)
		assert.Equal(t, "219.00", view.Classes[0].Price)
		assert.Equal(t, "95.00", view.Classes[1].Price)
	})

	t.Run("error: unknown city maps to ErrCityNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		promos := queriesmock.NewMockPromotionQueries(ctrl)

		notFound := infra.WrapRepoErr("city not found", catalog.ErrCityNotFound, infra.KindNotFound)
		store.EXPECT().FindBySlug(gomock.Any(), "houston").Return(nil, notFound).Times(1)

		_, err := queries.NewCatalogQueries(store, promos).GetCity(ctx, "houston")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCityNotFound))
	})

	t.Run("error: promotion failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCatalogReadStore(ctrl)
		promos := queriesmock.NewMockPromotionQueries(ctrl)

		austin, err := builder.NewCityBuilder().BuildDomain()
		require.NoError(t, err)
		promoErr := errors.New("clock unavailable")

		store.EXPECT().FindBySlug(gomock.Any(), "austin").Return(austin, nil).Times(1)
		promos.EXPECT().Current(gomock.Any()).Return(nil, promoErr).Times(1)

		_, err = queries.NewCatalogQueries(store, promos).GetCity(ctx, "austin")
		assert.ErrorIs(t, err, promoErr)
	})
}
