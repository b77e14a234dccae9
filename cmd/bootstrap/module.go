package bootstrap

import (
	"gemstore/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MetricsModule,
	GatewayModule,
	SweeperModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
