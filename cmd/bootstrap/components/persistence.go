package components

import (
	"workshop-site/internal/infra/catalogstore"
	"workshop-site/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			catalogstore.NewCatalogStore,
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)
