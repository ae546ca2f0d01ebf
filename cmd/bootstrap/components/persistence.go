package components

import (
	"fitstudio/internal/infra/readstore"
	sqlc "fitstudio/internal/infra/sqlc/generated"
	"fitstudio/internal/infra/uow"
	"fitstudio/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Class
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClassReadQueries)),
		),
		fx.Annotate(
			readstore.NewClassReadStore,
			fx.As(new(queries.ClassReadStore)),
		),
		// Trainer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TrainerReadQueries)),
		),
		fx.Annotate(
			readstore.NewTrainerReadStore,
			fx.As(new(queries.TrainerReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Progress
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProgressReadQueries)),
		),
		fx.Annotate(
			readstore.NewProgressReadStore,
			fx.As(new(queries.ProgressReadStore)),
		),
	),
)

// Write repositories are bound per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
