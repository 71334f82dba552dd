//go:build unit

package catalog_test

import (
	"testing"

	"workshop-site/internal/domain/catalog"
	"workshop-site/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CityBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewCityBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			city, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, city)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, city)
		})
	}
}

func TestCity(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		city, err := builder.NewCityBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, catalog.Slug("austin"), city.Slug())
		assert.Equal(t, "Austin", city.Name())
		assert.Equal(t, "America/Chicago", city.Location().String())
		require.Len(t, city.Classes(), 2)

		wheel := city.Classes()[0]
		assert.Equal(t, catalog.ProviderAcuity, wheel.Booking().Provider())
		assert.True(t, wheel.PromoEligible())
		assert.Equal(t, 120, wheel.DurationMinutes())
	})

	t.Run("class ids are stable per city and class slug", func(t *testing.T) {
		first, err := builder.NewCityBuilder().BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewCityBuilder().BuildDomain()
		require.NoError(t, err)
		other, err := builder.NewCityBuilder().With(func(b *builder.CityBuilder) { b.Slug = "dallas" }).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, first.Classes()[0].ID(), second.Classes()[0].ID())
		assert.NotEqual(t, first.Classes()[0].ID(), first.Classes()[1].ID())
		assert.NotEqual(t, first.Classes()[0].ID(), other.Classes()[0].ID())
	})

	t.Run("city validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "upper case slug", mutate: func(b *builder.CityBuilder) { b.Slug = "Austin" }, errIs: catalog.ErrInvalidSlug},
			{name: "slug with spaces", mutate: func(b *builder.CityBuilder) { b.Slug = "san antonio" }, errIs: catalog.ErrInvalidSlug},
			{name: "kebab slug", mutate: func(b *builder.CityBuilder) { b.Slug = "san-antonio" }},
			{name: "empty name", mutate: func(b *builder.CityBuilder) { b.Name = " " }, errIs: catalog.ErrEmptyTitle},
			{name: "unknown timezone", mutate: func(b *builder.CityBuilder) { b.Timezone = "Mars/Olympus" }, errIs: catalog.ErrUnknownTimezone},
			{name: "empty timezone", mutate: func(b *builder.CityBuilder) { b.Timezone = "" }, errIs: catalog.ErrUnknownTimezone},
			{
				name: "duplicate class slug",
				mutate: func(b *builder.CityBuilder) {
					b.Classes = append(b.Classes, builder.NewClassBuilder())
				},
				errIs: catalog.ErrDuplicateSlug,
			},
			{name: "no classes", mutate: func(b *builder.CityBuilder) { b.Classes = nil }},
		})
	})

	t.Run("class validation", func(t *testing.T) {
		first := func(mutate func(*builder.ClassBuilder)) func(*builder.CityBuilder) {
			return func(b *builder.CityBuilder) { b.Classes[0].With(mutate) }
		}
		runCases(t, []testCase{
			{name: "empty title", mutate: first(func(c *builder.ClassBuilder) { c.Title = "" }), errIs: catalog.ErrEmptyTitle},
			{name: "zero duration", mutate: first(func(c *builder.ClassBuilder) { c.DurationMinutes = 0 }), errIs: catalog.ErrInvalidDuration},
			{name: "unknown provider", mutate: first(func(c *builder.ClassBuilder) { c.Provider = "calendly" }), errIs: catalog.ErrUnknownProvider},
			{name: "provider is case insensitive", mutate: first(func(c *builder.ClassBuilder) { c.Provider = "RezClick" })},
			{name: "relative booking url", mutate: first(func(c *builder.ClassBuilder) { c.BookingURL = "/book/now" }), errIs: catalog.ErrInvalidBooking},
			{name: "non http booking url", mutate: first(func(c *builder.ClassBuilder) { c.BookingURL = "ftp://example.com/x" }), errIs: catalog.ErrInvalidBooking},
			{name: "negative base price", mutate: first(func(c *builder.ClassBuilder) { c.WithBasePrice(-5) }), errIs: catalog.ErrNegativePrice},
			{
				name: "fixed price class needs a base price",
				mutate: first(func(c *builder.ClassBuilder) {
					c.PromoEligible = false
					c.BasePrice = nil
				}),
				errIs: catalog.ErrMissingBasePrice,
			},
		})
	})
}

func TestClass_PriceWith(t *testing.T) {
	city, err := builder.NewCityBuilder().BuildDomain()
	require.NoError(t, err)
	promo := decimal.NewFromInt(179)

	eligible, fixed := city.Classes()[0], city.Classes()[1]
	assert.True(t, eligible.PriceWith(promo).Equal(promo))
	assert.True(t, fixed.PriceWith(promo).Equal(decimal.NewFromInt(95)))
}

func TestCatalog(t *testing.T) {
	austin, err := builder.NewCityBuilder().BuildDomain()
	require.NoError(t, err)
	dallas, err := builder.NewCityBuilder().With(func(b *builder.CityBuilder) {
		b.Slug = "dallas"
		b.Name = "Dallas"
	}).BuildDomain()
	require.NoError(t, err)

	t.Run("lookup by slug", func(t *testing.T) {
		c, err := catalog.NewCatalog([]*catalog.City{austin, dallas})
		require.NoError(t, err)

		got, err := c.City(" Dallas ")
		require.NoError(t, err)
		assert.Equal(t, "Dallas", got.Name())
		assert.Len(t, c.Cities(), 2)

		_, err = c.City("houston")
		assert.ErrorIs(t, err, catalog.ErrCityNotFound)
	})

	t.Run("duplicate city", func(t *testing.T) {
		_, err := catalog.NewCatalog([]*catalog.City{austin, austin})
		assert.ErrorIs(t, err, catalog.ErrDuplicateSlug)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := catalog.NewCatalog(nil)
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})
}
