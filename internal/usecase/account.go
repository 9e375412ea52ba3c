package usecase

import (
	"context"
	"errors"
	"log/slog"

	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	// ErrDeletionIncomplete means the rows were removed but the identity
	// still resolves; the account must be treated as live.
	ErrDeletionIncomplete = errors.New("account deletion incomplete: identity still resolvable")
)

// AccountUseCase handles account removal as a two-step flow: the first
// call issues a short-lived confirmation token, the second presents it
// and executes. Nothing is deleted until both steps have happened.
type AccountUseCase interface {
	RequestDeletion(ctx context.Context, userID uuid.UUID) (string, error)
	ConfirmDeletion(ctx context.Context, userID uuid.UUID, token string) error
}

type accountUseCaseImpl struct {
	userRepo        UserRepository
	profileRepo     ProfileRepository
	reservationRepo ReservationRepository
	tokenRepo       AuthTokenRepository
	clock           clock.Clock
	inFlight        *guard.InFlight
	lifetimes       TokenLifetimes
}

func NewAccountUseCase(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	reservationRepo ReservationRepository,
	tokenRepo AuthTokenRepository,
	clk clock.Clock,
	inFlight *guard.InFlight,
	lifetimes TokenLifetimes,
) AccountUseCase {
	return &accountUseCaseImpl{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		reservationRepo: reservationRepo,
		tokenRepo:       tokenRepo,
		clock:           clk,
		inFlight:        inFlight,
		lifetimes:       lifetimes,
	}
}

func (a *accountUseCaseImpl) RequestDeletion(ctx context.Context, userID uuid.UUID) (string, error) {
	if _, err := a.userRepo.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	token, err := issueAuthToken(ctx, a.tokenRepo, a.clock, userID, TokenPurposeDeleteConfirm, "", a.lifetimes.DeleteConfirm)
	if err != nil {
		return "", err
	}

	slog.Info("account deletion requested", "user_id", userID)
	return token, nil
}

// ConfirmDeletion removes the user's data in dependency order, then
// verifies the identity really is gone before reporting success.
func (a *accountUseCaseImpl) ConfirmDeletion(ctx context.Context, userID uuid.UUID, token string) error {
	key := "delete:" + userID.String()
	if err := a.inFlight.Acquire(key); err != nil {
		return err
	}
	defer a.inFlight.Release(key)

	record, err := a.tokenRepo.Consume(ctx, hashToken(token), TokenPurposeDeleteConfirm)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return err
	}
	if record.UserID != userID || a.clock.Now().After(record.ExpiresAt) {
		return ErrInvalidOrExpiredToken
	}

	if err := a.reservationRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := a.profileRepo.DeleteByUserID(ctx, userID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	if err := a.tokenRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := a.userRepo.Delete(ctx, userID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return err
	}

	// deletion is only done when the account no longer resolves
	if _, err := a.userRepo.FindByID(ctx, userID); err == nil {
		slog.Error("account still resolvable after deletion", "user_id", userID)
		return ErrDeletionIncomplete
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return ErrDeletionIncomplete
	}

	slog.Info("account deleted", "user_id", userID)
	return nil
}
