package catalogstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"workshop-site/internal/domain/catalog"
	"workshop-site/internal/infra"
	"workshop-site/internal/pkg/config"
	"workshop-site/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type catalogDocument struct {
	Cities []cityDocument `yaml:"cities"`
}

type cityDocument struct {
	Slug     string          `yaml:"slug"`
	Name     string          `yaml:"name"`
	Timezone string          `yaml:"timezone"`
	Classes  []classDocument `yaml:"classes"`
}

type classDocument struct {
	Slug            string          `yaml:"slug"`
	Title           string          `yaml:"title"`
	Description     string          `yaml:"description"`
	DurationMinutes int             `yaml:"duration_minutes"`
	PromoEligible   bool            `yaml:"promo_eligible"`
	BasePrice       string          `yaml:"base_price"`
	Booking         bookingDocument `yaml:"booking"`
}

type bookingDocument struct {
	Provider string `yaml:"provider"`
	URL      string `yaml:"url"`
}

// CatalogStore serves the city catalog loaded from a YAML file at startup.
type CatalogStore struct {
	catalog *catalog.Catalog
}

func NewCatalogStore(cfg config.CatalogConfig) (*CatalogStore, error) {
	c, err := Load(cfg.Path)
	if err != nil {
		return nil, err
	}
	return &CatalogStore{catalog: c}, nil
}

func (s *CatalogStore) FindAll(_ context.Context) ([]*catalog.City, error) {
	return s.catalog.Cities(), nil
}

func (s *CatalogStore) FindBySlug(_ context.Context, slug string) (*catalog.City, error) {
	city, err := s.catalog.City(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrCityNotFound) {
			return nil, infra.WrapRepoErr("city not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find city by slug", err)
	}
	return city, nil
}

func Load(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog file", err, infra.KindIOFailure)
	}
	return Parse(data)
}

func Parse(data []byte) (*catalog.Catalog, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, infra.WrapRepoErr("catalog file is empty", err, infra.KindDecodeFailure)
		}
		return nil, infra.WrapRepoErr("failed to decode catalog", err, infra.KindDecodeFailure)
	}

	cities := make([]*catalog.City, 0, len(doc.Cities))
	for _, cd := range doc.Cities {
		classes := make([]catalog.ClassParams, 0, len(cd.Classes))
		for _, cl := range cd.Classes {
			params, err := toClassParams(cl)
			if err != nil {
				return nil, infra.WrapRepoErr("invalid class price", errs.Wrapf(err, "city %q class %q", cd.Slug, cl.Slug), infra.KindValidationFailure)
			}
			classes = append(classes, params)
		}

		city, err := catalog.NewCity(cd.Slug, cd.Name, cd.Timezone, classes)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid city", err, infra.KindValidationFailure)
		}
		cities = append(cities, city)
	}

	c, err := catalog.NewCatalog(cities)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid catalog", err, infra.KindValidationFailure)
	}
	return c, nil
}

func toClassParams(cl classDocument) (catalog.ClassParams, error) {
	params := catalog.ClassParams{
		Slug:            cl.Slug,
		Title:           cl.Title,
		Description:     cl.Description,
		DurationMinutes: cl.DurationMinutes,
		PromoEligible:   cl.PromoEligible,
		Provider:        cl.Booking.Provider,
		BookingURL:      cl.Booking.URL,
	}

	if raw := strings.TrimSpace(cl.BasePrice); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return catalog.ClassParams{}, err
		}
		params.BasePrice = &price
	}

	return params, nil
}
