package request

import (
	"strings"
	"time"

	"workshop-site/internal/pkg/errs"
)

// PromotionQuery carries the optional evaluation instant for previews.
type PromotionQuery struct {
	At string `form:"at"`
}

// ToDomain returns the requested instant, or ok=false when none was given.
func (q *PromotionQuery) ToDomain() (at time.Time, ok bool, err error) {
	raw := strings.TrimSpace(q.At)
	if raw == "" {
		return time.Time{}, false, nil
	}
	at, err = time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, errs.Mark(errs.Wrapf(err, "parse at %q", raw), errs.ErrInvalidEvaluationTime)
	}
	return at, true, nil
}
