package bootstrap

import (
	"context"
	"log/slog"

	"tour-booking-console/internal/infra/db"
	"tour-booking-console/internal/infra/kvstore"
	"tour-booking-console/internal/infra/progress"
	"tour-booking-console/internal/pkg/config"
	"tour-booking-console/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewProgressKV,
	),
)

// NewProgressKV opens the storage selected by PROGRESS_STORE. The postgres
// store migrates its table before first use.
func NewProgressKV(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (progress.KV, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		logger.Warn("wizard progress is kept in memory and lost on restart")
		return kvstore.NewMemoryKV(), nil

	case config.StorePostgres:
		if err := kvstore.Migrate(cfg.Migrations.Path, cfg.DB); err != nil {
			return nil, errs.Wrap(err, "failed to migrate progress store")
		}
		pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		logger.Info("wizard progress store ready", "driver", cfg.Store.Driver, "host", cfg.DB.Host)
		return kvstore.NewPostgresKV(pool), nil

	default:
		kv, err := kvstore.OpenBolt(cfg.Store.BoltPath)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return kv.Close()
			},
		})
		logger.Info("wizard progress store ready", "driver", config.StoreBolt, "path", cfg.Store.BoltPath)
		return kv, nil
	}
}
