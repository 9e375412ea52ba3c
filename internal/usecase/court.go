package usecase

import (
	"context"

	"court-reserve/internal/usecase/readmodel"
)

type CourtUseCase interface {
	ListCourts(ctx context.Context) ([]*readmodel.CourtRM, error)
}

type courtUseCaseImpl struct {
	courtRepo CourtRepository
}

func NewCourtUseCase(courtRepo CourtRepository) CourtUseCase {
	return &courtUseCaseImpl{courtRepo: courtRepo}
}

func (c *courtUseCaseImpl) ListCourts(ctx context.Context) ([]*readmodel.CourtRM, error) {
	return c.courtRepo.ListActive(ctx)
}
