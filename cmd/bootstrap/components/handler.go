package components

import (
	"court-reserve/internal/handler"
	"court-reserve/internal/handler/api"
	"court-reserve/internal/handler/middleware"
	"court-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewCourtHandler,
		api.NewProfileHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, account *api.AccountHandler, court *api.CourtHandler, profile *api.ProfileHandler, reservation *api.ReservationHandler) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Account:     account,
				Court:       court,
				Profile:     profile,
				Reservation: reservation,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
