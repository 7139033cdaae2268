package dto

import (
	"time"

	"github.com/tracknest/timetrack_app/internal/core/domain"
	"github.com/tracknest/timetrack_app/internal/core/timeclock"
	"github.com/tracknest/timetrack_app/internal/utils/pagination"
)

// Field names inline errors are reported under. The add-row and edit-row
// flows are kept separate so their error displays do not interfere with
// each other.
const (
	FieldNewStartTime  = "newStartTime"
	FieldNewEndTime    = "newEndTime"
	FieldNewDuration   = "newDuration"
	FieldEditStartTime = "editStartTime"
	FieldEditEndTime   = "editEndTime"
	FieldEditDuration  = "editDuration"
)

// PendingEdit carries the raw, possibly invalid, user-typed strings for
// the three interdependent time fields of an edit session. It is discarded
// on cancel or successful commit and never persisted.
type PendingEdit struct {
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	DurationHours string `json:"durationHours"`
}

// IsZero reports whether no time text was supplied at all.
func (p PendingEdit) IsZero() bool {
	return p.StartTime == "" && p.EndTime == "" && p.DurationHours == ""
}

// CreateTimeEntryRequest defines the payload for creating a time entry.
type CreateTimeEntryRequest struct {
	UserID        string      `json:"userID"` // defaults to the acting user
	ProjectID     string      `json:"projectID" binding:"required"`
	AreaOfFocusID string      `json:"areaOfFocusID"`
	CostCode      string      `json:"costCode"`
	Date          string      `json:"date" binding:"required,datetime=2006-01-02"`
	Note          string      `json:"note"`
	Pending       PendingEdit `json:"pending" binding:"required"`
}

// UpdateTimeEntryRequest defines the data allowed for editing an entry.
// Pointers differentiate omitted fields from zero-value fields; time
// fields travel as raw pending-edit text.
type UpdateTimeEntryRequest struct {
	UserID        *string     `json:"userID"`
	ProjectID     *string     `json:"projectID"`
	AreaOfFocusID *string     `json:"areaOfFocusID"`
	CostCode      *string     `json:"costCode"`
	Date          *string     `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Note          *string     `json:"note"`
	Pending       PendingEdit `json:"pending"`
}

// ListTimeEntriesParams defines query parameters for listing entries.
type ListTimeEntriesParams struct {
	UserID    string `form:"userID"`
	ProjectID string `form:"projectID"`
	SortBy    string `form:"sortBy,default=startTime" binding:"omitempty,oneof=startTime date duration"`
	SortDir   string `form:"sortDir,default=desc" binding:"omitempty,oneof=asc desc"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset,default=0"`
	PageToken string `form:"pageToken"`
}

// ValidateTimeFieldsRequest carries raw keystroke text per tracked field.
type ValidateTimeFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// ValidateTimeFieldsResponse maps each invalid-so-far field to its inline
// message. Fields that are fine are omitted.
type ValidateTimeFieldsResponse struct {
	Errors map[string]string `json:"errors"`
}

// TimeEntryResponse is the API representation of a time entry, including
// the display strings the UI renders.
type TimeEntryResponse struct {
	EntryID          string     `json:"entryID"`
	UserID           string     `json:"userID"`
	ProjectID        string     `json:"projectID"`
	AreaOfFocusID    string     `json:"areaOfFocusID,omitempty"`
	CostCode         string     `json:"costCode,omitempty"`
	Date             string     `json:"date"`
	StartAt          time.Time  `json:"startAt"`
	EndAt            *time.Time `json:"endAt,omitempty"`
	DurationSeconds  int64      `json:"durationSeconds"`
	StartTimeDisplay string     `json:"startTimeDisplay"`
	EndTimeDisplay   string     `json:"endTimeDisplay,omitempty"`
	DurationDisplay  string     `json:"durationDisplay"`
	Note             string     `json:"note,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ChangeRecordResponse is the API representation of one audit record.
type ChangeRecordResponse struct {
	Field     string    `json:"field"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

// ListTimeEntriesResponse wraps the list of entries. NextPageToken is a
// cursor over (startAt, entryID) for fetching the page after this one; it
// is empty when the page was empty.
type ListTimeEntriesResponse struct {
	Entries       []TimeEntryResponse `json:"entries"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

// TimeEntryHistoryResponse wraps an entry's audit trail, oldest first.
type TimeEntryHistoryResponse struct {
	History []ChangeRecordResponse `json:"history"`
}

// ToTimeEntryResponse converts a domain.TimeEntry to its API representation.
func ToTimeEntryResponse(e *domain.TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		EntryID:          e.EntryID,
		UserID:           e.UserID,
		ProjectID:        e.ProjectID,
		AreaOfFocusID:    e.AreaOfFocusID,
		CostCode:         e.CostCode,
		Date:             e.Date.Format("2006-01-02"),
		StartAt:          e.StartAt,
		EndAt:            e.EndAt,
		DurationSeconds:  e.DurationSeconds,
		StartTimeDisplay: timeclock.FormatClock(e.StartAt),
		DurationDisplay:  timeclock.FormatDurationHours(e.DurationSeconds),
		Note:             e.Note,
		CreatedAt:        e.CreatedAt,
		LastUpdatedAt:    e.LastUpdatedAt,
		LastUpdatedBy:    e.LastUpdatedBy,
	}
	if e.EndAt != nil {
		resp.EndTimeDisplay = timeclock.FormatClock(*e.EndAt)
	}
	return resp
}

// ToListTimeEntriesResponse converts a slice of entries.
func ToListTimeEntriesResponse(entries []domain.TimeEntry) ListTimeEntriesResponse {
	out := make([]TimeEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToTimeEntryResponse(&entries[i])
	}
	resp := ListTimeEntriesResponse{Entries: out}
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		resp.NextPageToken = pagination.EncodeCursor(last.StartAt, last.EntryID)
	}
	return resp
}

// ToChangeRecordResponse converts one audit record.
func ToChangeRecordResponse(r domain.ChangeRecord) ChangeRecordResponse {
	return ChangeRecordResponse{
		Field:     r.Field,
		OldValue:  r.OldValue,
		NewValue:  r.NewValue,
		ChangedBy: r.ChangedBy,
		ChangedAt: r.ChangedAt,
	}
}

// ToTimeEntryHistoryResponse converts an audit trail.
func ToTimeEntryHistoryResponse(records []domain.ChangeRecord) TimeEntryHistoryResponse {
	out := make([]ChangeRecordResponse, len(records))
	for i, r := range records {
		out[i] = ToChangeRecordResponse(r)
	}
	return TimeEntryHistoryResponse{History: out}
}
