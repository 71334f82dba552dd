package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidDuration   = errors.New("class duration must be positive")
	ErrNegativePrice     = errors.New("class price cannot be negative")
	ErrMissingBasePrice  = errors.New("classes outside the promotion need a base price")
	ErrDuplicateSlug     = errors.New("duplicate slug")
	ErrUnknownTimezone   = errors.New("unknown city timezone")
	ErrCityNotFound      = errors.New("city not found")
	ErrEmptyCatalog      = errors.New("catalog has no cities")
	ErrTitleTooLong      = errors.New("title is too long (max 120 characters)")
	ErrDescriptionTooBig = errors.New("description is too long (max 2000 characters)")
)

const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 2000
)

type ClassParams struct {
	Slug            string
	Title           string
	Description     string
	DurationMinutes int
	PromoEligible   bool
	BasePrice       *decimal.Decimal
	Provider        string
	BookingURL      string
}

type Class struct {
	id              uuid.UUID
	slug            Slug
	title           string
	description     string
	durationMinutes int
	promoEligible   bool
	basePrice       decimal.Decimal
	booking         BookingLink
}

// classNamespace keeps class IDs stable across restarts for the same city/class slugs.
var classNamespace = uuid.MustParse("6f1f9a2e-5d3c-4b8e-9a61-0c2d7e4b1a90")

func NewClass(city Slug, p ClassParams) (*Class, error) {
	slug, err := NewSlug(p.Slug)
	if err != nil {
		return nil, fmt.Errorf("class %q: %w", p.Slug, err)
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, fmt.Errorf("class %q: %w", slug, ErrEmptyTitle)
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("class %q: %w", slug, ErrTitleTooLong)
	}
	if len(p.Description) > MaxDescriptionLength {
		return nil, fmt.Errorf("class %q: %w", slug, ErrDescriptionTooBig)
	}
	if p.DurationMinutes <= 0 {
		return nil, fmt.Errorf("class %q: %w", slug, ErrInvalidDuration)
	}

	var basePrice decimal.Decimal
	switch {
	case p.BasePrice != nil && p.BasePrice.IsNegative():
		return nil, fmt.Errorf("class %q: %w", slug, ErrNegativePrice)
	case p.BasePrice != nil:
		basePrice = *p.BasePrice
	case !p.PromoEligible:
		return nil, fmt.Errorf("class %q: %w", slug, ErrMissingBasePrice)
	}

	booking, err := NewBookingLink(p.Provider, p.BookingURL)
	if err != nil {
		return nil, fmt.Errorf("class %q: %w", slug, err)
	}

	return &Class{
		id:              uuid.NewSHA1(classNamespace, []byte(city.String()+"/"+slug.String())),
		slug:            slug,
		title:           title,
		description:     strings.TrimSpace(p.Description),
		durationMinutes: p.DurationMinutes,
		promoEligible:   p.PromoEligible,
		basePrice:       basePrice,
		booking:         booking,
	}, nil
}

// PriceWith resolves the price shown for the class given the price the
// weekly promotion currently charges.
func (c *Class) PriceWith(promotionPrice decimal.Decimal) decimal.Decimal {
	if c.promoEligible {
		return promotionPrice
	}
	return c.basePrice
}

func (c *Class) ID() uuid.UUID              { return c.id }
func (c *Class) Slug() Slug                 { return c.slug }
func (c *Class) Title() string              { return c.title }
func (c *Class) Description() string        { return c.description }
func (c *Class) DurationMinutes() int       { return c.durationMinutes }
func (c *Class) PromoEligible() bool        { return c.promoEligible }
func (c *Class) BasePrice() decimal.Decimal { return c.basePrice }
func (c *Class) Booking() BookingLink       { return c.booking }

type City struct {
	slug     Slug
	name     string
	location *time.Location
	classes  []*Class
}

func NewCity(slug, name, timezone string, classes []ClassParams) (*City, error) {
	citySlug, err := NewSlug(slug)
	if err != nil {
		return nil, fmt.Errorf("city %q: %w", slug, err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("city %q: %w", citySlug, ErrEmptyTitle)
	}

	loc, err := time.LoadLocation(strings.TrimSpace(timezone))
	if err != nil || strings.TrimSpace(timezone) == "" {
		return nil, fmt.Errorf("city %q: %w: %q", citySlug, ErrUnknownTimezone, timezone)
	}

	seen := make(map[Slug]struct{}, len(classes))
	built := make([]*Class, 0, len(classes))
	for _, cp := range classes {
		class, err := NewClass(citySlug, cp)
		if err != nil {
			return nil, fmt.Errorf("city %q: %w", citySlug, err)
		}
		if _, dup := seen[class.Slug()]; dup {
			return nil, fmt.Errorf("city %q: class %q: %w", citySlug, class.Slug(), ErrDuplicateSlug)
		}
		seen[class.Slug()] = struct{}{}
		built = append(built, class)
	}

	return &City{
		slug:     citySlug,
		name:     name,
		location: loc,
		classes:  built,
	}, nil
}

func (c *City) Slug() Slug               { return c.slug }
func (c *City) Name() string             { return c.name }
func (c *City) Location() *time.Location { return c.location }
func (c *City) Classes() []*Class        { return append([]*Class(nil), c.classes...) }

// Catalog is the read-only set of cities served by the site. It is built
// once at startup and shared.
type Catalog struct {
	cities []*City
	bySlug map[Slug]*City
}

func NewCatalog(cities []*City) (*Catalog, error) {
	if len(cities) == 0 {
		return nil, ErrEmptyCatalog
	}

	bySlug := make(map[Slug]*City, len(cities))
	for _, city := range cities {
		if _, dup := bySlug[city.Slug()]; dup {
			return nil, fmt.Errorf("city %q: %w", city.Slug(), ErrDuplicateSlug)
		}
		bySlug[city.Slug()] = city
	}

	return &Catalog{
		cities: append([]*City(nil), cities...),
		bySlug: bySlug,
	}, nil
}

func (c *Catalog) Cities() []*City {
	return append([]*City(nil), c.cities...)
}

func (c *Catalog) City(slug string) (*City, error) {
	city, ok := c.bySlug[Slug(strings.ToLower(strings.TrimSpace(slug)))]
	if !ok {
		return nil, ErrCityNotFound
	}
	return city, nil
}
