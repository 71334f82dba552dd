package response

import (
	"workshop-site/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CitySummaryResponse struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Timezone   string `json:"timezone"`
	ClassCount int    `json:"class_count"`
}

type CityResponse struct {
	Slug      string             `json:"slug"`
	Name      string             `json:"name"`
	Timezone  string             `json:"timezone"`
	Promotion *PromotionResponse `json:"promotion" copier:"-"`
	Classes   []ClassResponse    `json:"classes" copier:"-"`
}

type ClassResponse struct {
	ID              uuid.UUID `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	PromoEligible   bool      `json:"promo_eligible"`
	Price           string    `json:"price"`
	Currency        string    `json:"currency"`
	Provider        string    `json:"provider"`
	BookingURL      string    `json:"booking_url"`
}

func FromCitySummaries(items []*queries.CitySummaryView) ([]*CitySummaryResponse, error) {
	res := make([]*CitySummaryResponse, len(items))
	for i, it := range items {
		res[i] = &CitySummaryResponse{}
		if err := copier.Copy(res[i], it); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FromCityView copies nested promotion and classes by hand; copier only
// handles the flat fields.
func FromCityView(v *queries.CityView) (*CityResponse, error) {
	var res CityResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}

	if v.Promotion != nil {
		promo, err := FromPromotionView(v.Promotion)
		if err != nil {
			return nil, err
		}
		res.Promotion = promo
	}

	res.Classes = make([]ClassResponse, len(v.Classes))
	for i := range v.Classes {
		if err := copier.Copy(&res.Classes[i], &v.Classes[i]); err != nil {
			return nil, err
		}
	}
	return &res, nil
}
