//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/pkg/guard"
	"court-reserve/internal/usecase"
	"court-reserve/internal/usecase/readmodel"
	"court-reserve/tests/common/builder"
	usecasemock "court-reserve/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

type AccountUseCaseTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	userRepo        *usecasemock.MockUserRepository
	profileRepo     *usecasemock.MockProfileRepository
	reservationRepo *usecasemock.MockReservationRepository
	tokenRepo       *usecasemock.MockAuthTokenRepository
	clock           *clock.MockClock
	inFlight        *guard.InFlight
	uc              usecase.AccountUseCase

	userID uuid.UUID
}

func (s *AccountUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = usecasemock.NewMockUserRepository(s.ctrl)
	s.profileRepo = usecasemock.NewMockProfileRepository(s.ctrl)
	s.reservationRepo = usecasemock.NewMockReservationRepository(s.ctrl)
	s.tokenRepo = usecasemock.NewMockAuthTokenRepository(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC))
	s.inFlight = guard.NewInFlight()
	s.uc = usecase.NewAccountUseCase(
		s.userRepo, s.profileRepo, s.reservationRepo, s.tokenRepo,
		s.clock, s.inFlight,
		usecase.TokenLifetimes{DeleteConfirm: 15 * time.Minute},
	)

	s.userID = uuid.New()
}

func (s *AccountUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AccountUseCaseTestSuite))
}

func (s *AccountUseCaseTestSuite) validRecord() *readmodel.AuthTokenRM {
	return &readmodel.AuthTokenRM{
		ID:        uuid.New(),
		UserID:    s.userID,
		Purpose:   usecase.TokenPurposeDeleteConfirm,
		ExpiresAt: s.clock.Now().Add(15 * time.Minute),
	}
}

func (s *AccountUseCaseTestSuite) TestRequestDeletion_IssuesToken() {
	existing := builder.NewUserBuilder().WithID(s.userID).BuildReadModel()
	s.userRepo.EXPECT().FindByID(gomock.Any(), s.userID).Return(existing, nil)

	var storedHash string
	s.tokenRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *readmodel.AuthTokenRM, tokenHash string) error {
			s.Equal(s.userID, record.UserID)
			s.Equal(usecase.TokenPurposeDeleteConfirm, record.Purpose)
			s.Equal(s.clock.Now().Add(15*time.Minute), record.ExpiresAt)
			storedHash = tokenHash
			return nil
		})

	token, err := s.uc.RequestDeletion(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Regexp(hexToken, token)
	s.Regexp(hexToken, storedHash)
	s.NotEqual(token, storedHash)
}

func (s *AccountUseCaseTestSuite) TestRequestDeletion_UnknownUser() {
	s.userRepo.EXPECT().FindByID(gomock.Any(), s.userID).
		Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound))

	_, err := s.uc.RequestDeletion(context.Background(), s.userID)
	s.ErrorIs(err, usecase.ErrUserNotFound)
}

func (s *AccountUseCaseTestSuite) TestRequestDeletion_RepoFailurePassesThrough() {
	// a database failure is not "user not found"
	dbErr := infra.WrapRepoErr("connection reset", errors.New("conn closed"), infra.KindDBFailure)
	s.userRepo.EXPECT().FindByID(gomock.Any(), s.userID).Return(nil, dbErr)

	_, err := s.uc.RequestDeletion(context.Background(), s.userID)
	s.NotErrorIs(err, usecase.ErrUserNotFound)
	s.True(infra.IsKind(err, infra.KindDBFailure))
}

func (s *AccountUseCaseTestSuite) TestConfirmDeletion_Success() {
	notFound := infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)
	gomock.InOrder(
		s.tokenRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), usecase.TokenPurposeDeleteConfirm).
			Return(s.validRecord(), nil),
		s.reservationRepo.EXPECT().DeleteByUser(gomock.Any(), s.userID).Return(nil),
		s.profileRepo.EXPECT().DeleteByUserID(gomock.Any(), s.userID).Return(nil),
		s.tokenRepo.EXPECT().DeleteByUser(gomock.Any(), s.userID).Return(nil),
		s.userRepo.EXPECT().Delete(gomock.Any(), s.userID).Return(nil),
		s.userRepo.EXPECT().FindByID(gomock.Any(), s.userID).Return(nil, notFound),
	)

	err := s.uc.ConfirmDeletion(context.Background(), s.userID, "raw-token")
	s.NoError(err)
}

func (s *AccountUseCaseTestSuite) TestConfirmDeletion_ToleratesMissingProfile() {
	notFound := infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
	s.tokenRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), usecase.TokenPurposeDeleteConfirm).
		Return(s.validRecord(), nil)
	s.reservationRepo.EXPECT().DeleteByUser(gomock.Any(), s.userID).Return(nil)
	s.profileRepo.EXPECT().DeleteByUserID(gomock.Any(), s.userID).Return(notFound)
	s.tokenRepo.EXPECT().DeleteByUser(gomock.Any(), s.userID).Return(nil)
	s.userRepo.EXPECT().Delete(gomock.Any(), s.userID).Return(nil)
	s.userRepo.EXPECT().FindByID(gomock.Any(), s.userID).Return(nil, notFound)

	err := s.uc.ConfirmDeletion(context.Background(), s.userID, "raw-token")
	s.NoError(err)
}

func (s *AccountUseCaseTestSuite) TestConfirmDeletion_UnknownToken() {
	s.tokenRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), usecase.TokenPurposeDeleteConfirm).
		Return(nil, infra.WrapRepoErr("token not found", errors.New("no rows"), infra.KindNotFound))

	err := s.uc.ConfirmDeletion(context.Background(), s.userID, "raw-token")
	s.ErrorIs(err, usecase.ErrInvalidOrExpiredToken)
}

func (s *AccountUseCaseTestSuite) TestConfirmDeletion_TokenForAnotherUser() {
	record := s.validRecord()
	record.UserID = uuid.New()
	s.tokenRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), usecase.TokenPurposeDeleteConfirm).
		Return(record, nil)

	err := s.uc.ConfirmDeletion(context.Background(), s.userID, "raw-token")
	s.ErrorIs(err, usecase.ErrInvalidOrExpiredToken)
}

func (s *AccountUseCaseTestSuite) TestConfirmDeletion_ExpiredToken() {
	record := s.validRecord()
	s.tokenRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), usecase.TokenPurposeDeleteConfirm).
		Return(record, nil)
	s.clock.Add(16 * time.Minute)

	err := s.uc.ConfirmDeletion(context.Background(), s.userID, "raw-token")
	s.ErrorIs(err, usecase.ErrInvalidOrExpiredToken)
}

func (s *AccountUseCaseTestSuite) TestConfirmDeletion_IdentityStillResolvable() {
	still := builder.NewUserBuilder().WithID(s.userID).BuildReadModel()
	s.tokenRepo.EXPECT().Consume(gomock.Any(), gomock.Any(), usecase.TokenPurposeDeleteConfirm).
		Return(s.validRecord(), nil)
	s.reservationRepo.EXPECT().DeleteByUser(gomock.Any(), s.userID).Return(nil)
	s.profileRepo.EXPECT().DeleteByUserID(gomock.Any(), s.userID).Return(nil)
	s.tokenRepo.EXPECT().DeleteByUser(gomock.Any(), s.userID).Return(nil)
	s.userRepo.EXPECT().Delete(gomock.Any(), s.userID).Return(nil)
	s.userRepo.EXPECT().FindByID(gomock.Any(), s.userID).Return(still, nil)

	err := s.uc.ConfirmDeletion(context.Background(), s.userID, "raw-token")
	s.ErrorIs(err, usecase.ErrDeletionIncomplete)
}

func (s *AccountUseCaseTestSuite) TestConfirmDeletion_BlockedWhileInFlight() {
	s.Require().NoError(s.inFlight.Acquire("delete:" + s.userID.String()))

	err := s.uc.ConfirmDeletion(context.Background(), s.userID, "raw-token")
	s.ErrorIs(err, guard.ErrRequestInFlight)
}
