package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"court-reserve/internal/domain/user"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/pkg/jwt"
	"court-reserve/internal/pkg/password"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserInactive           = errors.New("user account is inactive")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrIncompleteRegistration = errors.New("registration incomplete: profile missing")
	ErrTokenGeneration        = errors.New("token generation failed")
	ErrTokenValidation        = errors.New("token validation failed")
	ErrInvalidOrExpiredToken  = errors.New("invalid or expired token")
)

// Single-use token purposes.
const (
	TokenPurposePasswordReset = "password_reset"
	TokenPurposeEmailChange   = "email_change"
	TokenPurposeDeleteConfirm = "delete_confirm"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, p *user.Profile, email string) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error)
	Update(ctx context.Context, p *user.Profile) error
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type AuthTokenRepository interface {
	Create(ctx context.Context, t *readmodel.AuthTokenRM, tokenHash string) error
	Consume(ctx context.Context, tokenHash, purpose string) (*readmodel.AuthTokenRM, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type SignUpParams struct {
	Email        user.Email
	Password     user.Password
	FullName     string
	FullNameKana string
	Phone        string
}

type TokenLifetimes struct {
	PasswordReset time.Duration
	EmailChange   time.Duration
	DeleteConfirm time.Duration
}

type AuthUseCase interface {
	SignUp(ctx context.Context, params SignUpParams) (*readmodel.AuthorizedUserRM, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ConfirmPasswordReset(ctx context.Context, token string, newPassword user.Password) error
	RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail user.Email) (string, error)
	ConfirmEmailChange(ctx context.Context, token string) error
}

type authUseCaseImpl struct {
	userRepo    UserRepository
	profileRepo ProfileRepository
	tokenRepo   AuthTokenRepository
	jwtService  *jwt.Service
	clock       clock.Clock
	lifetimes   TokenLifetimes
}

func NewAuthUseCase(
	userRepo UserRepository,
	profileRepo ProfileRepository,
	tokenRepo AuthTokenRepository,
	jwtService *jwt.Service,
	clk clock.Clock,
	lifetimes TokenLifetimes,
) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		jwtService:  jwtService,
		clock:       clk,
		lifetimes:   lifetimes,
	}
}

func (a *authUseCaseImpl) SignUp(ctx context.Context, params SignUpParams) (*readmodel.AuthorizedUserRM, error) {
	hash, err := password.HashPassword(params.Password.Value())
	if err != nil {
		return nil, err
	}

	newUser := user.NewUser(params.Email, hash)
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	profile, err := user.NewProfile(newUser.ID(), params.FullName, params.FullNameKana, params.Phone)
	if err != nil {
		return nil, err
	}
	if err := a.profileRepo.Create(ctx, profile, params.Email.Value()); err != nil {
		// identity row exists; /auth/me reports the registration as
		// incomplete until a re-registration fills in the profile
		slog.Warn("profile creation failed after signup", "user_id", newUser.ID(), "error", err.Error())
		return nil, err
	}

	return a.userRepo.FindByID(ctx, newUser.ID())
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(userReadModel.ID, userReadModel.Email)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userReadModel.ID); err != nil {
		return "", nil, err
	}

	return token, userReadModel, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	userReadModel, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	u, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	// a user row without its profile row is an interrupted signup
	if !u.HasProfile {
		return nil, ErrIncompleteRegistration
	}

	return u, nil
}

// RequestPasswordReset issues a reset token. The caller gets the same
// success answer whether or not the email exists, so accounts cannot be
// enumerated; the empty-token case is logged only.
func (a *authUseCaseImpl) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	userReadModel, _, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("password reset requested for unknown email")
			return "", nil
		}
		return "", err
	}

	return a.issueToken(ctx, userReadModel.ID, TokenPurposePasswordReset, "", a.lifetimes.PasswordReset)
}

func (a *authUseCaseImpl) ConfirmPasswordReset(ctx context.Context, token string, newPassword user.Password) error {
	record, err := a.consumeToken(ctx, token, TokenPurposePasswordReset)
	if err != nil {
		return err
	}

	hash, err := password.HashPassword(newPassword.Value())
	if err != nil {
		return err
	}

	if err := a.userRepo.UpdatePassword(ctx, record.UserID, hash); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (a *authUseCaseImpl) RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail user.Email) (string, error) {
	if _, err := a.userRepo.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	return a.issueToken(ctx, userID, TokenPurposeEmailChange, newEmail.Value(), a.lifetimes.EmailChange)
}

func (a *authUseCaseImpl) ConfirmEmailChange(ctx context.Context, token string) error {
	record, err := a.consumeToken(ctx, token, TokenPurposeEmailChange)
	if err != nil {
		return err
	}

	if err := a.userRepo.UpdateEmail(ctx, record.UserID, record.Payload); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrEmailAlreadyRegistered
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// profile email is denormalized display data; best effort
	if err := a.profileRepo.UpdateEmail(ctx, record.UserID, record.Payload); err != nil {
		slog.Warn("failed to sync profile email", "user_id", record.UserID, "error", err.Error())
	}
	return nil
}

func (a *authUseCaseImpl) issueToken(ctx context.Context, userID uuid.UUID, purpose, payload string, lifetime time.Duration) (string, error) {
	return issueAuthToken(ctx, a.tokenRepo, a.clock, userID, purpose, payload, lifetime)
}

// issueAuthToken mints a random single-use token, stores its hash and
// returns the raw value. A fresh issue replaces any previous token for
// the same (user, purpose) pair.
func issueAuthToken(
	ctx context.Context,
	repo AuthTokenRepository,
	clk clock.Clock,
	userID uuid.UUID,
	purpose, payload string,
	lifetime time.Duration,
) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", ErrTokenGeneration
	}
	token := hex.EncodeToString(raw)

	record := &readmodel.AuthTokenRM{
		ID:        uuid.New(),
		UserID:    userID,
		Purpose:   purpose,
		Payload:   payload,
		ExpiresAt: clk.Now().Add(lifetime),
	}
	if err := repo.Create(ctx, record, hashToken(token)); err != nil {
		return "", err
	}

	return token, nil
}

func (a *authUseCaseImpl) consumeToken(ctx context.Context, token, purpose string) (*readmodel.AuthTokenRM, error) {
	record, err := a.tokenRepo.Consume(ctx, hashToken(token), purpose)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, err
	}

	if a.clock.Now().After(record.ExpiresAt) {
		return nil, ErrInvalidOrExpiredToken
	}
	return record, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
