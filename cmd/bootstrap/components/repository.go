package components

import (
	"styledecor/internal/infra/pgquery"
	"styledecor/internal/infra/repository"
	"styledecor/internal/infra/uow"
	"styledecor/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQueries,
		NewDBTX,
		// Booking: the cache module decides what serves shared.BookingRepository
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.BookingQueries)),
		),
		repository.NewBookingRepository,
		// Message
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.MessageQueries)),
		),
		fx.Annotate(
			repository.NewMessageRepository,
			fx.As(new(shared.MessageRepository)),
		),
		// Review
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.ReviewWriteQueries)),
		),
		fx.Annotate(
			repository.NewReviewRepository,
			fx.As(new(shared.ReviewRepository)),
		),
		// Payment
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.PaymentQueries)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(shared.PaymentRepository)),
		),
		// Wishlist
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.WishlistQueries)),
		),
		fx.Annotate(
			repository.NewWishlistRepository,
			fx.As(new(shared.WishlistRepository)),
		),
		// Stats
		fx.Annotate(
			NewQueries,
			fx.As(new(repository.StatsQueries)),
		),
		fx.Annotate(
			repository.NewStatsRepository,
			fx.As(new(shared.StatsRepository)),
		),
		// UnitOfWork
		uow.NewPostgresUoW,
	),
)

func NewQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
