package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/padgame/pad_backend/internal/apperrors"
	portssvc "github.com/padgame/pad_backend/internal/core/ports/services"
	"github.com/padgame/pad_backend/internal/dto"
	"github.com/padgame/pad_backend/internal/middleware"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// RegisterJournalRoutes registers journal specific routes.
func RegisterJournalRoutes(r gin.IRouter, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	r.POST("/journals", h.createJournal)
	r.GET("/journals/:journalID", h.getJournal)
	r.POST("/journals/:journalID/finalize", h.finalizeJournal)
	r.GET("/lobbies/:lobbyID/journals", h.getLobbyJournals)
}

// createJournal godoc
// @Summary Submit a journal with its observations
// @Description Creates a new journal and its observations in one atomic step
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal and observations"
// @Success 200 {object} map[string]string "Returns the ID of the created journal"
// @Failure 400 {object} map[string]string "lobbyId or userId missing"
// @Failure 500 {object} map[string]string "Database failure"
// @Router /journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", bindingErrorDetail(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "lobbyId and userId are required"})
		return
	}

	journalID, err := h.journalService.CreateJournal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating journal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create journal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"journalId": journalID})
}

// getJournal godoc
// @Summary Get a journal and its observations
// @Description Retrieves a journal and its observations by journal ID
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Database failure"
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID, ok := resourceID(c, "journalID")
	if !ok {
		return
	}

	journal, observations, err := h.journalService.GetJournalWithObservations(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal not found", slog.String("journal_id", journalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
			return
		}
		logger.Error("Failed to get journal from service", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal, observations))
}

// getLobbyJournals godoc
// @Summary List the journals submitted in a lobby
// @Description Retrieves id and userId of every journal in a lobby, most recently submitted first
// @Tags journals
// @Produce  json
// @Param   lobbyID path string true "Lobby ID"
// @Success 200 {object} dto.ListLobbyJournalsResponse
// @Failure 500 {object} map[string]string "Database failure"
// @Router /lobbies/{lobbyID}/journals [get]
func (h *journalHandler) getLobbyJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lobbyID, ok := resourceID(c, "lobbyID")
	if !ok {
		return
	}

	journals, err := h.journalService.ListJournalsByLobby(c.Request.Context(), lobbyID)
	if err != nil {
		logger.Error("Failed to list lobby journals", slog.String("error", err.Error()), slog.String("lobby_id", lobbyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ListLobbyJournalsResponse{Journals: dto.ToLobbyJournalResponses(journals)})
}

// finalizeJournal godoc
// @Summary Finalize a journal
// @Description Reveals the actual ghost type, computes the award and stores it. A journal can be finalized at most once.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Param   outcome body dto.FinalizeJournalRequest true "Actual ghost type"
// @Success 200 {object} dto.FinalizeJournalResponse
// @Failure 400 {object} map[string]string "actualGhostTypeId missing"
// @Failure 404 {object} map[string]string "Journal not found or already finalized"
// @Failure 500 {object} map[string]string "Database failure"
// @Router /journals/{journalID}/finalize [post]
func (h *journalHandler) finalizeJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID, ok := resourceID(c, "journalID")
	if !ok {
		return
	}

	var req dto.FinalizeJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for finalizeJournal", bindingErrorDetail(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "actualGhostTypeId is required"})
		return
	}

	awarded, err := h.journalService.FinalizeJournal(c.Request.Context(), journalID, req.ActualGhostTypeID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error finalizing journal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Journal not found or already finalized", slog.String("journal_id", journalID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found or already finalized"})
		default:
			logger.Error("Failed to finalize journal in service", slog.String("error", err.Error()), slog.String("journal_id", journalID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FinalizeJournalResponse{Awarded: awarded})
}
