package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"context"

	"workshop-site/internal/domain/catalog"
	"workshop-site/internal/infra"
	"workshop-site/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CitySummaryView struct {
	Slug       string
	Name       string
	Timezone   string
	ClassCount int
}

type CityView struct {
	Slug      string
	Name      string
	Timezone  string
	Promotion *PromotionView
	Classes   []ClassView
}

type ClassView struct {
	ID              uuid.UUID
	Slug            string
	Title           string
	Description     string
	DurationMinutes int
	PromoEligible   bool
	Price           string
	Currency        string
	Provider        string
	BookingURL      string
}

type CatalogQueries interface {
	ListCities(ctx context.Context) ([]*CitySummaryView, error)
	GetCity(ctx context.Context, slug string) (*CityView, error)
}

type CatalogReadStore interface {
	FindAll(ctx context.Context) ([]*catalog.City, error)
	FindBySlug(ctx context.Context, slug string) (*catalog.City, error)
}

type catalogQueriesImpl struct {
	readStore  CatalogReadStore
	promotions PromotionQueries
}

func NewCatalogQueries(readStore CatalogReadStore, promotions PromotionQueries) CatalogQueries {
	return &catalogQueriesImpl{
		readStore:  readStore,
		promotions: promotions,
	}
}

func (q *catalogQueriesImpl) ListCities(ctx context.Context) ([]*CitySummaryView, error) {
	cities, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*CitySummaryView, len(cities))
	for i, city := range cities {
		views[i] = &CitySummaryView{
			Slug:       city.Slug().String(),
			Name:       city.Name(),
			Timezone:   city.Location().String(),
			ClassCount: len(city.Classes()),
		}
	}
	return views, nil
}

// GetCity resolves each class price against the promotion status at the
// time of the call.
func (q *catalogQueriesImpl) GetCity(ctx context.Context, slug string) (*CityView, error) {
	city, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCityNotFound)
		}
		return nil, err
	}

	promo, err := q.promotions.Current(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "resolve promotion for city pricing")
	}
	promoPrice, err := decimal.NewFromString(promo.CurrentPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "parse promotion price %q", promo.CurrentPrice)
	}

	classes := city.Classes()
	view := &CityView{
		Slug:      city.Slug().String(),
		Name:      city.Name(),
		Timezone:  city.Location().String(),
		Promotion: promo,
		Classes:   make([]ClassView, len(classes)),
	}
	for i, class := range classes {
		view.Classes[i] = ClassView{
			ID:              class.ID(),
			Slug:            class.Slug().String(),
			Title:           class.Title(),
			Description:     class.Description(),
			DurationMinutes: class.DurationMinutes(),
			PromoEligible:   class.PromoEligible(),
			Price:           class.PriceWith(promoPrice).StringFixed(2),
			Currency:        promo.Currency,
			Provider:        class.Booking().Provider().String(),
			BookingURL:      class.Booking().URL(),
		}
	}
	return view, nil
}
