package components

import (
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/pkg/guard"
	"court-reserve/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		guard.NewInFlight,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewAccountUseCase,
		usecase.NewCourtUseCase,
		usecase.NewProfileUseCase,
		usecase.NewReservationUseCase,
	),
)
