package components

import (
	"gemstore/internal/handler"
	"gemstore/internal/handler/api"
	"gemstore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewPaymentHandler,
		api.NewOrderHandler,
		api.NewInvoiceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
