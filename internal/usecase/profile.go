package usecase

import (
	"context"
	"errors"

	"court-reserve/internal/domain/user"
	"court-reserve/internal/infra"
	"court-reserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileParams struct {
	FullName     string
	FullNameKana string
	Phone        string
}

type ProfileUseCase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params ProfileParams) (*readmodel.ProfileRM, error)
}

type profileUseCaseImpl struct {
	profileRepo ProfileRepository
}

func NewProfileUseCase(profileRepo ProfileRepository) ProfileUseCase {
	return &profileUseCaseImpl{profileRepo: profileRepo}
}

func (p *profileUseCaseImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error) {
	profile, err := p.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (p *profileUseCaseImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, params ProfileParams) (*readmodel.ProfileRM, error) {
	profile, err := user.NewProfile(userID, params.FullName, params.FullNameKana, params.Phone)
	if err != nil {
		return nil, err
	}

	if err := p.profileRepo.Update(ctx, profile); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return p.profileRepo.FindByUserID(ctx, userID)
}
