package components

import (
	"tour-booking-console/internal/handler"
	"tour-booking-console/internal/handler/api"
	"tour-booking-console/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
