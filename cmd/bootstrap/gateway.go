package bootstrap

import (
	"gemstore/internal/infra/gateway"
	"gemstore/internal/pkg/config"
	"gemstore/internal/pkg/metrics"
	"gemstore/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, m *metrics.Metrics) *gateway.PayPalClient {
	return gateway.NewPayPalClient(cfg.Gateway, m)
}
