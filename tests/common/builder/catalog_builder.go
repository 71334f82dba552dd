//go:build unit

package builder

import (
	"workshop-site/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type ClassBuilder struct {
	Slug            string
	Title           string
	Description     string
	DurationMinutes int
	PromoEligible   bool
	BasePrice       *decimal.Decimal
	Provider        string
	BookingURL      string
}

func NewClassBuilder() *ClassBuilder {
	return &ClassBuilder{
		Slug:            "wheel-throwing-101",
		Title:           "Wheel Throwing 101",
		Description:     "Two hours on the wheel, clay and glazing included.",
		DurationMinutes: 120,
		PromoEligible:   true,
		Provider:        "acuity",
		BookingURL:      "https://app.acuityscheduling.com/schedule.php?owner=123&appointmentType=456",
	}
}

func (b *ClassBuilder) With(mutate func(*ClassBuilder)) *ClassBuilder {
	mutate(b)
	return b
}

func (b *ClassBuilder) WithBasePrice(v int64) *ClassBuilder {
	p := decimal.NewFromInt(v)
	b.BasePrice = &p
	return b
}

func (b *ClassBuilder) BuildParams() catalog.ClassParams {
	return catalog.ClassParams{
		Slug:            b.Slug,
		Title:           b.Title,
		Description:     b.Description,
		DurationMinutes: b.DurationMinutes,
		PromoEligible:   b.PromoEligible,
		BasePrice:       b.BasePrice,
		Provider:        b.Provider,
		BookingURL:      b.BookingURL,
	}
}

type CityBuilder struct {
	Slug     string
	Name     string
	Timezone string
	Classes  []*ClassBuilder
}

func NewCityBuilder() *CityBuilder {
	return &CityBuilder{
		Slug:     "austin",
		Name:     "Austin",
		Timezone: "America/Chicago",
		Classes: []*ClassBuilder{
			NewClassBuilder(),
			NewClassBuilder().With(func(c *ClassBuilder) {
				c.Slug = "date-night-painting"
				c.Title = "Date Night Painting"
				c.DurationMinutes = 150
				c.PromoEligible = false
				c.Provider = "eventbrite"
				c.BookingURL = "https://www.eventbrite.com/e/date-night-painting-tickets-1234567890"
			}).WithBasePrice(95),
		},
	}
}

func (b *CityBuilder) With(mutate func(*CityBuilder)) *CityBuilder {
	mutate(b)
	return b
}

func (b *CityBuilder) BuildDomain() (*catalog.City, error) {
	params := make([]catalog.ClassParams, len(b.Classes))
	for i, c := range b.Classes {
		params[i] = c.BuildParams()
	}
	return catalog.NewCity(b.Slug, b.Name, b.Timezone, params)
}
