package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tracknest/timetrack_app/internal/apperrors"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
	"github.com/tracknest/timetrack_app/internal/dto"
	"github.com/tracknest/timetrack_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// timeEntryHandler handles HTTP requests related to time entries.
type timeEntryHandler struct {
	entryService portssvc.TimeEntrySvcFacade
}

// newTimeEntryHandler creates a new timeEntryHandler.
func newTimeEntryHandler(es portssvc.TimeEntrySvcFacade) *timeEntryHandler {
	return &timeEntryHandler{
		entryService: es,
	}
}

// registerTimeEntryRoutes registers all time-entry routes.
func registerTimeEntryRoutes(rg *gin.RouterGroup, entryService portssvc.TimeEntrySvcFacade) {
	h := newTimeEntryHandler(entryService)

	entries := rg.Group("/time-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
		entries.GET("/:id/history", h.getEntryHistory)
		entries.POST("/validate", h.validateTimeFields)
	}
}

// respondCommitError translates commit pipeline errors into HTTP responses.
// Field-level problems come back as a per-field error map so the UI can
// place each message next to its input.
func respondCommitError(c *gin.Context, logger *slog.Logger, err error) {
	var fieldErr *apperrors.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Msg}})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Time entry not found"})
	default:
		logger.Error("Time entry commit failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save time entry"})
	}
}

// createEntry godoc
// @Summary Create a time entry
// @Description Parses the typed time fields, reconciles start/end/duration and persists the entry.
// @Tags time-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateTimeEntryRequest true "Entry details with raw time text"
// @Success 201 {object} dto.TimeEntryResponse
// @Failure 400 {object} map[string]string "Invalid or contradictory time fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /time-entries [post]
func (h *timeEntryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondCommitError(c, logger, err)
		return
	}

	logger.Info("Time entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToTimeEntryResponse(entry))
}

// listEntries godoc
// @Summary List time entries
// @Description Retrieves a filtered, ordered, paginated list of time entries.
// @Tags time-entries
// @Produce  json
// @Param   userID query string false "Filter by user"
// @Param   projectID query string false "Filter by project"
// @Param   sortBy query string false "Sort field" Enums(startTime, date, duration) default(startTime)
// @Param   sortDir query string false "Sort direction" Enums(asc, desc) default(desc)
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Param   pageToken query string false "Cursor from a previous page's nextPageToken"
// @Success 200 {object} dto.ListTimeEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /time-entries [get]
func (h *timeEntryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTimeEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list time entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list time entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTimeEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get a time entry
// @Description Retrieves a single time entry including its audit history.
// @Tags time-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /time-entries/{id} [get]
func (h *timeEntryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Time entry not found"})
		} else {
			logger.Error("Failed to get time entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve time entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a time entry
// @Description Reconciles the edited fields against the stored entry and appends the resulting change records to its history.
// @Tags time-entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateTimeEntryRequest true "Fields to update; time fields as raw text"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 400 {object} map[string]string "Invalid or contradictory time fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /time-entries/{id} [put]
func (h *timeEntryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req, actorUserID)
	if err != nil {
		respondCommitError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a time entry
// @Description Removes a time entry and its audit history.
// @Tags time-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /time-entries/{id} [delete]
func (h *timeEntryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID, actorUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Time entry not found"})
		} else {
			logger.Error("Failed to delete time entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete time entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// getEntryHistory godoc
// @Summary Get a time entry's audit history
// @Description Retrieves the append-only change history of an entry, oldest first.
// @Tags time-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.TimeEntryHistoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve history"
// @Security BearerAuth
// @Router /time-entries/{id}/history [get]
func (h *timeEntryHandler) getEntryHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	history, err := h.entryService.GetEntryHistory(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Time entry not found"})
		} else {
			logger.Error("Failed to get entry history", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeEntryHistoryResponse(history))
}

// validateTimeFields godoc
// @Summary Validate in-progress time text
// @Description Checks the raw text of each named time field and returns an inline message per field that is invalid so far. Incomplete text is not an error.
// @Tags time-entries
// @Accept  json
// @Produce  json
// @Param   fields body dto.ValidateTimeFieldsRequest true "Raw field text keyed by field name"
// @Success 200 {object} dto.ValidateTimeFieldsResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Security BearerAuth
// @Router /time-entries/validate [post]
func (h *timeEntryHandler) validateTimeFields(c *gin.Context) {
	var req dto.ValidateTimeFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ValidateTimeFieldsResponse{
		Errors: h.entryService.ValidatePending(req.Fields),
	})
}
