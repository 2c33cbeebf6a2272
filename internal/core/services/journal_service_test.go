package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/padgame/pad_backend/internal/apperrors"
	"github.com/padgame/pad_backend/internal/core/domain"
	portsrepo "github.com/padgame/pad_backend/internal/core/ports/repositories"
	portssvc "github.com/padgame/pad_backend/internal/core/ports/services"
	"github.com/padgame/pad_backend/internal/core/services"
	"github.com/padgame/pad_backend/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, observations []domain.Observation) error {
	args := m.Called(ctx, journal, observations)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindObservationsByJournalID(ctx context.Context, journalID string) ([]domain.Observation, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Observation), args.Error(1)
}

func (m *MockJournalRepository) ListJournalsByLobby(ctx context.Context, lobbyID string) ([]domain.Journal, error) {
	args := m.Called(ctx, lobbyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindGuessForFinalize(ctx context.Context, journalID string) (*string, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockJournalRepository) FinalizeJournal(ctx context.Context, journalID string, actualGhostTypeID string, awardedAmount decimal.Decimal, finalizedAt time.Time) error {
	args := m.Called(ctx, journalID, actualGhostTypeID, awardedAmount, finalizedAt)
	return args.Error(0)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJournalRepository
	service  portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.service = services.NewJournalService(suite.mockRepo)
}

func strPtr(s string) *string {
	return &s
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Success() {
	lobbyID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.CreateJournalRequest{
		LobbyID: lobbyID,
		UserID:  userID,
		Observations: []dto.ObservationInput{
			{Symptom: "Freezing temperatures", Evidence: strPtr("thermometer reading")},
			{Symptom: "EMF level 5"},
		},
		GuessGhostTypeID: strPtr("ghost-type-1"),
	}

	suite.mockRepo.On("SaveJournal", mock.Anything,
		mock.MatchedBy(func(j domain.Journal) bool {
			return j.LobbyID == lobbyID && j.UserID == userID && j.GuessGhostTypeID != nil && *j.GuessGhostTypeID == "ghost-type-1"
		}),
		mock.MatchedBy(func(obs []domain.Observation) bool {
			return len(obs) == 2 && obs[0].Symptom == "Freezing temperatures" && obs[1].Symptom == "EMF level 5"
		}),
	).Return(nil).Once()

	journalID, err := suite.service.CreateJournal(context.Background(), req)

	suite.Require().NoError(err)
	_, parseErr := uuid.Parse(journalID)
	suite.NoError(parseErr, "journal ID should be a valid UUID")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_MissingFields() {
	req := dto.CreateJournalRequest{LobbyID: uuid.NewString()}

	_, err := suite.service.CreateJournal(context.Background(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_RepoErrorPropagates() {
	req := dto.CreateJournalRequest{LobbyID: uuid.NewString(), UserID: uuid.NewString()}
	repoErr := errors.New("insert failed")

	suite.mockRepo.On("SaveJournal", mock.Anything, mock.Anything, mock.Anything).Return(repoErr).Once()

	_, err := suite.service.CreateJournal(context.Background(), req)

	suite.ErrorIs(err, repoErr)
}

func (suite *JournalServiceTestSuite) TestGetJournalWithObservations_PreservesOrder() {
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, LobbyID: uuid.NewString(), UserID: uuid.NewString()}
	observations := []domain.Observation{
		{JournalID: journalID, Symptom: "first"},
		{JournalID: journalID, Symptom: "second"},
		{JournalID: journalID, Symptom: "third"},
	}

	suite.mockRepo.On("FindJournalByID", mock.Anything, journalID).Return(journal, nil).Once()
	suite.mockRepo.On("FindObservationsByJournalID", mock.Anything, journalID).Return(observations, nil).Once()

	gotJournal, gotObs, err := suite.service.GetJournalWithObservations(context.Background(), journalID)

	suite.Require().NoError(err)
	suite.Equal(journalID, gotJournal.JournalID)
	suite.Require().Len(gotObs, 3)
	suite.Equal("first", gotObs[0].Symptom)
	suite.Equal("second", gotObs[1].Symptom)
	suite.Equal("third", gotObs[2].Symptom)
}

func (suite *JournalServiceTestSuite) TestGetJournalWithObservations_NotFound() {
	journalID := uuid.NewString()
	suite.mockRepo.On("FindJournalByID", mock.Anything, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.GetJournalWithObservations(context.Background(), journalID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindObservationsByJournalID", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestFinalizeJournal_CorrectGuessAwards120() {
	journalID := uuid.NewString()
	actual := "ghost-type-1"

	suite.mockRepo.On("FindGuessForFinalize", mock.Anything, journalID).Return(strPtr(actual), nil).Once()
	suite.mockRepo.On("FinalizeJournal", mock.Anything, journalID, actual,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(120)) }),
		mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	awarded, err := suite.service.FinalizeJournal(context.Background(), journalID, actual)

	suite.Require().NoError(err)
	suite.True(awarded.Amount.Equal(decimal.NewFromInt(120)))
	suite.Equal("CRD", awarded.Currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestFinalizeJournal_WrongGuessAwards100() {
	journalID := uuid.NewString()

	suite.mockRepo.On("FindGuessForFinalize", mock.Anything, journalID).Return(strPtr("ghost-type-1"), nil).Once()
	suite.mockRepo.On("FinalizeJournal", mock.Anything, journalID, "ghost-type-2",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(100)) }),
		mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	awarded, err := suite.service.FinalizeJournal(context.Background(), journalID, "ghost-type-2")

	suite.Require().NoError(err)
	suite.True(awarded.Amount.Equal(decimal.NewFromInt(100)))
}

func (suite *JournalServiceTestSuite) TestFinalizeJournal_NoGuessAwards100() {
	journalID := uuid.NewString()

	suite.mockRepo.On("FindGuessForFinalize", mock.Anything, journalID).Return(nil, nil).Once()
	suite.mockRepo.On("FinalizeJournal", mock.Anything, journalID, "ghost-type-1",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(100)) }),
		mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	awarded, err := suite.service.FinalizeJournal(context.Background(), journalID, "ghost-type-1")

	suite.Require().NoError(err)
	suite.True(awarded.Amount.Equal(decimal.NewFromInt(100)))
}

func (suite *JournalServiceTestSuite) TestFinalizeJournal_AlreadyFinalized() {
	journalID := uuid.NewString()

	suite.mockRepo.On("FindGuessForFinalize", mock.Anything, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.FinalizeJournal(context.Background(), journalID, "ghost-type-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	// The stored award must never be touched on a failed finalize.
	suite.mockRepo.AssertNotCalled(suite.T(), "FinalizeJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestFinalizeJournal_MissingActualGhostType() {
	_, err := suite.service.FinalizeJournal(context.Background(), uuid.NewString(), "")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindGuessForFinalize", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListJournalsByLobby() {
	lobbyID := uuid.NewString()
	journals := []domain.Journal{
		{JournalID: uuid.NewString(), UserID: uuid.NewString()},
		{JournalID: uuid.NewString(), UserID: uuid.NewString()},
	}

	suite.mockRepo.On("ListJournalsByLobby", mock.Anything, lobbyID).Return(journals, nil).Once()

	got, err := suite.service.ListJournalsByLobby(context.Background(), lobbyID)

	suite.Require().NoError(err)
	suite.Equal(journals, got)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
