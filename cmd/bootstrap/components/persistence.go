package components

import (
	"log/slog"

	"tour-booking-console/internal/infra/backend"
	"tour-booking-console/internal/infra/progress"
	"tour-booking-console/internal/pkg/config"
	"tour-booking-console/internal/usecase/shared"

	"go.uber.org/fx"
)

// PersistenceModule binds the workflow ports. The progress.KV it needs comes
// from bootstrap.StoreModule.
var PersistenceModule = fx.Module("persistence",
	progressModule,
	backendModule,
)

var progressModule = fx.Module("persistence/progress",
	fx.Provide(
		fx.Annotate(
			progress.NewStore,
			fx.As(new(shared.ProgressStore)),
		),
	),
)

var backendModule = fx.Module("persistence/backend",
	fx.Provide(
		fx.Annotate(
			NewBackendClient,
			fx.As(new(shared.BookingBackend)),
		),
	),
)

func NewBackendClient(cfg config.Config, logger *slog.Logger) *backend.Client {
	return backend.NewClient(cfg.Backend, logger)
}
