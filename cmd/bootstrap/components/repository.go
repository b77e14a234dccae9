package components

import (
	"gemstore/internal/infra/db"
	repo_impl "gemstore/internal/infra/repository"
	"gemstore/internal/infra/uow"
	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(commands.UnitOfWork)),
		),
		// Write repositories double as read stores; the sweeper additionally
		// needs the concrete checkout repository.
		fx.Annotate(
			repo_impl.NewCheckoutRepository,
			fx.As(fx.Self()),
			fx.As(new(commands.CheckoutRepository)),
			fx.As(new(queries.CheckoutReadStore)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			repo_impl.NewItemRepository,
			fx.As(new(commands.ItemRepository)),
		),
		fx.Annotate(
			repo_impl.NewInvoiceRepository,
			fx.As(new(commands.InvoiceRepository)),
			fx.As(new(queries.InvoiceReadStore)),
		),
		fx.Annotate(
			repo_impl.NewAddressReadStore,
			fx.As(new(commands.AddressReadStore)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
