package repositories

import (
	"context"
	"time"

	"github.com/padgame/pad_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindObservationsByJournalID retrieves a journal's observations in
	// insertion order.
	FindObservationsByJournalID(ctx context.Context, journalID string) ([]domain.Observation, error)

	// ListJournalsByLobby retrieves the journals submitted in a lobby,
	// most recently submitted first.
	ListJournalsByLobby(ctx context.Context, lobbyID string) ([]domain.Journal, error)

	// FindGuessForFinalize retrieves the stored guess of a journal that has
	// not been finalized yet. It returns apperrors.ErrNotFound when the
	// journal is absent or already finalized.
	FindGuessForFinalize(ctx context.Context, journalID string) (*string, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveJournal persists a journal and all of its observations within a
	// single database transaction. Either everything is written or nothing.
	SaveJournal(ctx context.Context, journal domain.Journal, observations []domain.Observation) error

	// FinalizeJournal records the actual ghost type and the awarded amount
	// on a journal, guarded by finalized_at IS NULL. It returns
	// apperrors.ErrNotFound when no unfinalized journal matched.
	FinalizeJournal(ctx context.Context, journalID string, actualGhostTypeID string, awardedAmount decimal.Decimal, finalizedAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
