package bootstrap

import (
	"context"

	"gemstore/internal/infra/repository"
	"gemstore/internal/infra/sweeper"
	"gemstore/internal/pkg/clock"
	"gemstore/internal/pkg/config"
	"gemstore/internal/pkg/metrics"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(RunSweeper),
)

func RunSweeper(
	lc fx.Lifecycle,
	cfg config.Config,
	repo *repository.CheckoutRepository,
	clk clock.Clock,
	m *metrics.Metrics,
) {
	s := sweeper.New(repo, clk, m, cfg.Checkout)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
