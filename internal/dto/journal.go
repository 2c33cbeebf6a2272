package dto

import (
	"time"

	"github.com/padgame/pad_backend/internal/core/domain"
)

// ObservationInput is one symptom/evidence pair submitted with a journal.
type ObservationInput struct {
	Symptom  string  `json:"symptom" binding:"required"`
	Evidence *string `json:"evidence"`
}

// CreateJournalRequest defines the payload for submitting a journal.
type CreateJournalRequest struct {
	LobbyID          string             `json:"lobbyId" binding:"required"`
	UserID           string             `json:"userId" binding:"required"`
	Observations     []ObservationInput `json:"observations"`
	GuessGhostTypeID *string            `json:"guessGhostTypeId"`
}

// FinalizeJournalRequest defines the payload for finalizing a journal.
type FinalizeJournalRequest struct {
	ActualGhostTypeID string `json:"actualGhostTypeId" binding:"required"`
}

// ObservationResponse is one observation as returned with its journal.
type ObservationResponse struct {
	Symptom  string  `json:"symptom"`
	Evidence *string `json:"evidence"`
}

// JournalResponse defines the data returned for a single journal.
// Finalization state is intentionally not exposed here.
type JournalResponse struct {
	ID               string                `json:"id"`
	LobbyID          string                `json:"lobbyId"`
	UserID           string                `json:"userId"`
	Observations     []ObservationResponse `json:"observations"`
	GuessGhostTypeID *string               `json:"guessGhostTypeId"`
	SubmittedAt      time.Time             `json:"submittedAt"`
}

// LobbyJournalResponse is the per-journal summary returned for lobby listings.
type LobbyJournalResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}

// ListLobbyJournalsResponse wraps the journals submitted in one lobby.
type ListLobbyJournalsResponse struct {
	Journals []LobbyJournalResponse `json:"journals"`
}

// FinalizeJournalResponse carries the award computed during finalization.
type FinalizeJournalResponse struct {
	Awarded domain.Money `json:"awarded"`
}

// ToJournalResponse converts a domain.Journal and its observations to a
// JournalResponse DTO.
func ToJournalResponse(j *domain.Journal, observations []domain.Observation) JournalResponse {
	obs := make([]ObservationResponse, len(observations))
	for i, o := range observations {
		obs[i] = ObservationResponse{
			Symptom:  o.Symptom,
			Evidence: o.Evidence,
		}
	}
	return JournalResponse{
		ID:               j.JournalID,
		LobbyID:          j.LobbyID,
		UserID:           j.UserID,
		Observations:     obs,
		GuessGhostTypeID: j.GuessGhostTypeID,
		SubmittedAt:      j.SubmittedAt,
	}
}

// ToLobbyJournalResponses converts lobby journals to their summary DTOs.
func ToLobbyJournalResponses(journals []domain.Journal) []LobbyJournalResponse {
	responses := make([]LobbyJournalResponse, len(journals))
	for i, j := range journals {
		responses[i] = LobbyJournalResponse{
			ID:     j.JournalID,
			UserID: j.UserID,
		}
	}
	return responses
}
