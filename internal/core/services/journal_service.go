package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/padgame/pad_backend/internal/apperrors"
	"github.com/padgame/pad_backend/internal/core/domain"
	portsrepo "github.com/padgame/pad_backend/internal/core/ports/repositories"
	portssvc "github.com/padgame/pad_backend/internal/core/ports/services"
	"github.com/padgame/pad_backend/internal/dto"
	"github.com/padgame/pad_backend/internal/middleware"
)

// Award constants: every finalized journal earns the base award, and a
// correct ghost-type guess earns the bonus on top.
var (
	baseAward  = decimal.NewFromInt(100)
	bonusAward = decimal.NewFromInt(20)
)

// journalService provides core journal operations.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournal persists a new journal with its observations as one atomic
// unit and returns the generated journal ID.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.LobbyID == "" || req.UserID == "" {
		return "", fmt.Errorf("%w: lobbyId and userId are required", apperrors.ErrValidation)
	}

	journalID := uuid.NewString()
	journal := domain.Journal{
		JournalID:        journalID,
		LobbyID:          req.LobbyID,
		UserID:           req.UserID,
		GuessGhostTypeID: req.GuessGhostTypeID,
	}

	observations := make([]domain.Observation, len(req.Observations))
	for i, obs := range req.Observations {
		observations[i] = domain.Observation{
			JournalID: journalID,
			Symptom:   obs.Symptom,
			Evidence:  obs.Evidence,
		}
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, observations); err != nil {
		return "", err
	}

	logger.Info("Journal created",
		slog.String("journal_id", journalID),
		slog.String("lobby_id", req.LobbyID),
		slog.Int("observation_count", len(observations)),
	)
	return journalID, nil
}

// GetJournalWithObservations retrieves a journal and its observations in
// insertion order.
func (s *journalService) GetJournalWithObservations(ctx context.Context, journalID string) (*domain.Journal, []domain.Observation, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, nil, err
	}

	observations, err := s.journalRepo.FindObservationsByJournalID(ctx, journalID)
	if err != nil {
		return nil, nil, err
	}

	return journal, observations, nil
}

// ListJournalsByLobby retrieves the journals of a lobby, most recently
// submitted first.
func (s *journalService) ListJournalsByLobby(ctx context.Context, lobbyID string) ([]domain.Journal, error) {
	return s.journalRepo.ListJournalsByLobby(ctx, lobbyID)
}

// FinalizeJournal reveals the actual ghost type, computes the award and
// stores both. The repository guard (finalized_at IS NULL) makes this a
// one-way transition: a journal already finalized reports ErrNotFound and
// its stored award is never touched again.
func (s *journalService) FinalizeJournal(ctx context.Context, journalID string, actualGhostTypeID string) (domain.Money, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actualGhostTypeID == "" {
		return domain.Money{}, fmt.Errorf("%w: actualGhostTypeId is required", apperrors.ErrValidation)
	}

	guess, err := s.journalRepo.FindGuessForFinalize(ctx, journalID)
	if err != nil {
		return domain.Money{}, err
	}

	awarded := baseAward
	if guess != nil && *guess == actualGhostTypeID {
		awarded = awarded.Add(bonusAward)
	}

	if err := s.journalRepo.FinalizeJournal(ctx, journalID, actualGhostTypeID, awarded, time.Now().UTC()); err != nil {
		return domain.Money{}, err
	}

	logger.Info("Journal finalized",
		slog.String("journal_id", journalID),
		slog.String("awarded_amount", awarded.String()),
	)
	return domain.Money{Amount: awarded, Currency: domain.DefaultCurrency}, nil
}
