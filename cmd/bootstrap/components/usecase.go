package components

import (
	"context"

	"tour-booking-console/internal/pkg/clock"
	"tour-booking-console/internal/usecase"
	"tour-booking-console/internal/usecase/commands"
	"tour-booking-console/internal/usecase/queries"

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
		commands.NewWizardCommands,
	),
	fx.Invoke(registerWizardShutdown),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// registerWizardShutdown stops completion pollers before the process exits.
func registerWizardShutdown(lc fx.Lifecycle, cmds commands.WizardCommands) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cmds.Shutdown()
			return nil
		},
	})
}
