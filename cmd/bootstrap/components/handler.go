package components

import (
	"fitstudio/internal/handler"
	"fitstudio/internal/handler/api"
	"fitstudio/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewClassHandler,
		api.NewBookingHandler,
		api.NewProgressHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	class *api.ClassHandler,
	booking *api.BookingHandler,
	progress *api.ProgressHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Class:    class,
		Booking:  booking,
		Progress: progress,
		Admin:    admin,
	}
}
