package response

import "time"

type HealthResponse struct {
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	Refresher *RefresherHealth `json:"refresher"`
}

// RefresherHealth reports the background evaluation. Ready is false until
// the first evaluation has run.
type RefresherHealth struct {
	Ready           bool       `json:"ready"`
	PromotionActive bool       `json:"promotion_active"`
	LastEvaluatedAt *time.Time `json:"last_evaluated_at,omitempty"`
}
