package bootstrap

import (
	"time"

	"court-reserve/internal/pkg/config"
	"court-reserve/internal/pkg/jwt"
	"court-reserve/internal/usecase"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewAccessTokenDuration,
		NewTokenLifetimes,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, NewAccessTokenDuration(cfg))
}

func NewAccessTokenDuration(cfg config.Config) time.Duration {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return duration
}

func NewTokenLifetimes(cfg config.Config) usecase.TokenLifetimes {
	return usecase.TokenLifetimes{
		PasswordReset: mustDuration("TOKEN_PASSWORD_RESET_DURATION", cfg.Token.PasswordResetDuration),
		EmailChange:   mustDuration("TOKEN_EMAIL_CHANGE_DURATION", cfg.Token.EmailChangeDuration),
		DeleteConfirm: mustDuration("TOKEN_DELETE_CONFIRM_DURATION", cfg.Token.DeleteConfirmDuration),
	}
}

func mustDuration(name, raw string) time.Duration {
	duration, err := time.ParseDuration(raw)
	if err != nil {
		panic("invalid " + name + ": " + err.Error())
	}
	return duration
}
