package response

import (
	"time"

	"workshop-site/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PromotionResponse struct {
	Active               bool       `json:"active"`
	CurrentPrice         string     `json:"current_price"`
	PromoPrice           string     `json:"promo_price"`
	RegularPrice         string     `json:"regular_price"`
	Currency             string     `json:"currency"`
	OpensAt              *time.Time `json:"opens_at,omitempty"`
	ClosesAt             *time.Time `json:"closes_at,omitempty"`
	HoursUntilTransition int        `json:"hours_until_transition"`
	Timezone             string     `json:"timezone"`
	WindowStart          string     `json:"window_start"`
	WindowEnd            string     `json:"window_end"`
	EvaluatedAt          time.Time  `json:"evaluated_at"`
}

func FromPromotionView(v *queries.PromotionView) (*PromotionResponse, error) {
	var res PromotionResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
