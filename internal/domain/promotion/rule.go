package promotion

import (
	"errors"
	"strings"
	"time"

	"workshop-site/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRule        = errors.New("invalid promotion rule")
	ErrTimezoneResolution = errors.New("timezone could not be resolved")
)

type RuleParams struct {
	Timezone     string
	Start        WeeklyPoint
	End          WeeklyPoint
	PromoPrice   decimal.Decimal
	RegularPrice decimal.Decimal
}

// Rule is a single weekly promotional window anchored in a civil timezone.
// It is immutable once built and safe to share between goroutines.
type Rule struct {
	location     *time.Location
	start        WeeklyPoint
	end          WeeklyPoint
	promoPrice   decimal.Decimal
	regularPrice decimal.Decimal
}

func NewRule(p RuleParams) (*Rule, error) {
	tz := strings.TrimSpace(p.Timezone)
	if tz == "" {
		return nil, errs.Markf(ErrTimezoneResolution, "timezone must be specified")
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "load timezone %q", tz), ErrTimezoneResolution)
	}

	if p.End.weekOffset() <= p.Start.weekOffset() {
		return nil, errs.Markf(ErrInvalidRule,
			"window end (%s) must be after window start (%s) within one Monday-first week", p.End, p.Start)
	}

	if p.PromoPrice.IsNegative() {
		return nil, errs.Markf(ErrInvalidRule, "promo price cannot be negative: %s", p.PromoPrice)
	}
	if p.RegularPrice.IsNegative() {
		return nil, errs.Markf(ErrInvalidRule, "regular price cannot be negative: %s", p.RegularPrice)
	}

	return &Rule{
		location:     loc,
		start:        p.Start,
		end:          p.End,
		promoPrice:   p.PromoPrice,
		regularPrice: p.RegularPrice,
	}, nil
}

// Evaluate derives the promotion status at now. It reads nothing but its
// arguments and the rule, so equal inputs give equal results.
func (r *Rule) Evaluate(now time.Time) Status {
	local := now.In(r.location)

	if WithinClosedInterval(local, r.start, r.end) {
		closesAt := nextTransition(local, r.end, r.start, r.end, true)
		return Status{
			Active:               true,
			CurrentPrice:         r.promoPrice,
			ClosesAt:             closesAt,
			HoursUntilTransition: hoursUntil(local, closesAt),
			EvaluatedAt:          local,
		}
	}

	opensAt := nextTransition(local, r.start, r.start, r.end, false)
	return Status{
		Active:               false,
		CurrentPrice:         r.regularPrice,
		OpensAt:              opensAt,
		HoursUntilTransition: hoursUntil(local, opensAt),
		EvaluatedAt:          local,
	}
}

func (r *Rule) Location() *time.Location      { return r.location }
func (r *Rule) Start() WeeklyPoint            { return r.start }
func (r *Rule) End() WeeklyPoint              { return r.end }
func (r *Rule) PromoPrice() decimal.Decimal   { return r.promoPrice }
func (r *Rule) RegularPrice() decimal.Decimal { return r.regularPrice }

// Status is the promotion state at one instant. Exactly one of OpensAt and
// ClosesAt is set: ClosesAt while the window is active, OpensAt otherwise.
type Status struct {
	Active               bool
	CurrentPrice         decimal.Decimal
	OpensAt              time.Time
	ClosesAt             time.Time
	HoursUntilTransition int
	EvaluatedAt          time.Time
}

// Transition is the next boundary instant, whichever side of the window
// the status is on.
func (s Status) Transition() time.Time {
	if s.Active {
		return s.ClosesAt
	}
	return s.OpensAt
}
