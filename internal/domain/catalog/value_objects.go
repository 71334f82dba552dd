package catalog

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	ErrInvalidSlug     = errors.New("slug must be lower-case kebab case")
	ErrUnknownProvider = errors.New("unknown booking provider")
	ErrInvalidBooking  = errors.New("booking url must be an absolute http(s) url")
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type Slug string

func NewSlug(s string) (Slug, error) {
	s = strings.TrimSpace(s)
	if !slugRegex.MatchString(s) {
		return "", ErrInvalidSlug
	}
	return Slug(s), nil
}

func (s Slug) String() string {
	return string(s)
}

// Provider is the third-party scheduler a class is booked through. The
// service only links out; it never calls these systems.
type Provider string

const (
	ProviderRezClick   Provider = "rezclick"
	ProviderAcuity     Provider = "acuity"
	ProviderEventbrite Provider = "eventbrite"
)

func (p Provider) String() string {
	return string(p)
}

func (p Provider) IsValid() bool {
	switch p {
	case ProviderRezClick, ProviderAcuity, ProviderEventbrite:
		return true
	default:
		return false
	}
}

type BookingLink struct {
	provider Provider
	url      string
}

func NewBookingLink(provider, rawURL string) (BookingLink, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(provider)))
	if !p.IsValid() {
		return BookingLink{}, ErrUnknownProvider
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return BookingLink{}, ErrInvalidBooking
	}

	return BookingLink{provider: p, url: u.String()}, nil
}

func (b BookingLink) Provider() Provider { return b.provider }
func (b BookingLink) URL() string        { return b.url }
