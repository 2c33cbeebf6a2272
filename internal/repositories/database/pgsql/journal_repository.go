package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/padgame/pad_backend/internal/apperrors"
	"github.com/padgame/pad_backend/internal/core/domain"
	portsrepo "github.com/padgame/pad_backend/internal/core/ports/repositories"
)

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// NewPgxJournalRepository creates a new repository for journal and observation data.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournal saves a journal and its observations within a DB transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, observations []domain.Observation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Defer rollback in case of error
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	journalQuery := `
		INSERT INTO journals (id, lobby_id, user_id, guess_ghost_type_id)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, journalQuery,
		journal.JournalID,
		journal.LobbyID,
		journal.UserID,
		journal.GuessGhostTypeID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal %s: %w", journal.JournalID, err)
	}

	// Insert all observations through a pgx batch so a journal with many
	// observations still needs a single round trip.
	batch := &pgx.Batch{}
	observationQuery := `
		INSERT INTO observations (journal_id, symptom, evidence)
		VALUES ($1, $2, $3);
	`
	for _, obs := range observations {
		batch.Queue(observationQuery,
			journal.JournalID,
			obs.Symptom,
			obs.Evidence,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute observation batch for journal %s: %w", journal.JournalID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for journal %s: %w", journal.JournalID, err)
	}

	return nil
}

// FindJournalByID retrieves a journal by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT id, lobby_id, user_id, guess_ghost_type_id, submitted_at, finalized_at, actual_ghost_type_id, awarded_amount, awarded_currency
		FROM journals
		WHERE id = $1;
	`
	var journal domain.Journal
	err := r.pool.QueryRow(ctx, query, journalID).Scan(
		&journal.JournalID,
		&journal.LobbyID,
		&journal.UserID,
		&journal.GuessGhostTypeID,
		&journal.SubmittedAt,
		&journal.FinalizedAt,
		&journal.ActualGhostTypeID,
		&journal.AwardedAmount,
		&journal.AwardedCurrency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	return &journal, nil
}

// FindObservationsByJournalID retrieves a journal's observations in insertion order.
func (r *PgxJournalRepository) FindObservationsByJournalID(ctx context.Context, journalID string) ([]domain.Observation, error) {
	query := `
		SELECT journal_id, symptom, evidence, created_at
		FROM observations
		WHERE journal_id = $1
		ORDER BY id;
	`
	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	observations := []domain.Observation{}
	for rows.Next() {
		var obs domain.Observation
		if err := rows.Scan(
			&obs.JournalID,
			&obs.Symptom,
			&obs.Evidence,
			&obs.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan observation row for journal %s: %w", journalID, err)
		}
		observations = append(observations, obs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating observation rows for journal %s: %w", journalID, err)
	}

	return observations, nil
}

// ListJournalsByLobby retrieves the journals of a lobby, most recently submitted first.
func (r *PgxJournalRepository) ListJournalsByLobby(ctx context.Context, lobbyID string) ([]domain.Journal, error) {
	query := `
		SELECT id, user_id
		FROM journals
		WHERE lobby_id = $1
		ORDER BY submitted_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, lobbyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals for lobby %s: %w", lobbyID, err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		var journal domain.Journal
		if err := rows.Scan(&journal.JournalID, &journal.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan journal row for lobby %s: %w", lobbyID, err)
		}
		journal.LobbyID = lobbyID
		journals = append(journals, journal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows for lobby %s: %w", lobbyID, err)
	}

	return journals, nil
}

// FindGuessForFinalize retrieves the stored guess of a not-yet-finalized journal.
func (r *PgxJournalRepository) FindGuessForFinalize(ctx context.Context, journalID string) (*string, error) {
	query := `
		SELECT guess_ghost_type_id
		FROM journals
		WHERE id = $1 AND finalized_at IS NULL;
	`
	var guess *string
	err := r.pool.QueryRow(ctx, query, journalID).Scan(&guess)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absent and already finalized are indistinguishable here.
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal %s for finalization: %w", journalID, err)
	}

	return guess, nil
}

// FinalizeJournal records the outcome and award on an unfinalized journal.
func (r *PgxJournalRepository) FinalizeJournal(ctx context.Context, journalID string, actualGhostTypeID string, awardedAmount decimal.Decimal, finalizedAt time.Time) error {
	query := `
		UPDATE journals
		SET finalized_at = $2,
		    actual_ghost_type_id = $3,
		    awarded_amount = $4
		WHERE id = $1 AND finalized_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, journalID, finalizedAt, actualGhostTypeID, awardedAmount)
	if err != nil {
		return fmt.Errorf("failed to finalize journal %s: %w", journalID, err)
	}
	if tag.RowsAffected() == 0 {
		// The finalized_at IS NULL guard keeps a second finalize from
		// ever overwriting the stored award.
		return apperrors.ErrNotFound
	}

	return nil
}
