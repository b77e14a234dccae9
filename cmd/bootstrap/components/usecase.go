package components

import (
	"gemstore/internal/infra/pdfrender"
	"gemstore/internal/pkg/clock"
	"gemstore/internal/pkg/config"
	"gemstore/internal/usecase"
	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewPaymentUseCase,
		commands.NewOrderUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
		queries.NewOrderQueries,
		queries.NewInvoiceQueries,
		fx.Annotate(
			NewInvoiceRenderer,
			fx.As(new(queries.DocumentRenderer)),
		),
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewInvoiceRenderer(cfg config.Config) *pdfrender.InvoiceRenderer {
	return pdfrender.NewInvoiceRenderer(cfg.Gateway.BrandName)
}
