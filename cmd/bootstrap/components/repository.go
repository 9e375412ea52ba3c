package components

import (
	repo_impl "court-reserve/internal/infra/repository"
	"court-reserve/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(usecase.ProfileRepository)),
		),
		fx.Annotate(
			repo_impl.NewAuthTokenRepository,
			fx.As(new(usecase.AuthTokenRepository)),
		),
		fx.Annotate(
			repo_impl.NewCourtRepository,
			fx.As(new(usecase.CourtRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
	),
)
