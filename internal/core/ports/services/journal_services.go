package services

import (
	"context"

	"github.com/padgame/pad_backend/internal/core/domain"
	"github.com/padgame/pad_backend/internal/dto"
)

// JournalSvcFacade defines the operations of the journal service.
type JournalSvcFacade interface {
	// CreateJournal persists a new journal with its observations as one
	// atomic unit and returns the generated journal ID.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (string, error)

	// GetJournalWithObservations retrieves a journal and its observations
	// in insertion order.
	GetJournalWithObservations(ctx context.Context, journalID string) (*domain.Journal, []domain.Observation, error)

	// ListJournalsByLobby retrieves the journals of a lobby, most recently
	// submitted first.
	ListJournalsByLobby(ctx context.Context, lobbyID string) ([]domain.Journal, error)

	// FinalizeJournal reveals the actual ghost type for a journal, computes
	// the award and stores both. A journal can be finalized at most once;
	// later attempts fail with apperrors.ErrNotFound.
	FinalizeJournal(ctx context.Context, journalID string, actualGhostTypeID string) (domain.Money, error)
}
