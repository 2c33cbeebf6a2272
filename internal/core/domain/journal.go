package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is a single player's submitted observations and ghost-type guess
// for one game round. It is created once together with its observations and
// mutated exactly once, by finalization.
type Journal struct {
	JournalID         string
	LobbyID           string
	UserID            string
	GuessGhostTypeID  *string
	SubmittedAt       time.Time
	FinalizedAt       *time.Time
	ActualGhostTypeID *string
	AwardedAmount     decimal.Decimal
	AwardedCurrency   string
}

// IsFinalized reports whether the journal has already been finalized.
func (j *Journal) IsFinalized() bool {
	return j.FinalizedAt != nil
}

// Observation is one recorded symptom/evidence pair attached to a journal.
// Observations only exist as part of journal creation and are retrieved in
// insertion order.
type Observation struct {
	JournalID string
	Symptom   string
	Evidence  *string
	CreatedAt time.Time
}
