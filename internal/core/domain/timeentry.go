package domain

import "time"

// TimeEntry represents one unit of tracked work.
//
// Exactly two of {StartAt, EndAt, DurationSeconds} are authoritative at any
// time; the third is derived by reconciliation and must never be persisted
// inconsistently with the other two.
type TimeEntry struct {
	EntryID         string     `json:"entryID"` // Primary Key (e.g., UUID)
	UserID          string     `json:"userID"`
	ProjectID       string     `json:"projectID"`
	AreaOfFocusID   string     `json:"areaOfFocusID"` // Nullable FK
	CostCode        string     `json:"costCode"`      // Nullable FK
	Date            time.Time  `json:"date"`          // Civil date the entry is filed under (midnight UTC)
	StartAt         time.Time  `json:"startAt"`
	EndAt           *time.Time `json:"endAt"` // Nil until an end time or duration is supplied
	DurationSeconds int64      `json:"durationSeconds"`
	Note            string     `json:"note"`

	// History is the append-only audit trail, oldest first. Entries are
	// never mutated or removed once appended.
	History []ChangeRecord `json:"history,omitempty"`

	AuditFields
}

// ChangeRecord is one audited field mutation. Old and new values are
// human-readable display strings frozen at the moment of the change.
type ChangeRecord struct {
	RecordID  string    `json:"recordID"`
	EntryID   string    `json:"entryID"`
	Field     string    `json:"field"`
	OldValue  string    `json:"oldValue"`
	NewValue  string    `json:"newValue"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

// Trackable field names, also the stable order ChangeRecords are emitted in.
const (
	FieldDate            = "date"
	FieldStartTime       = "startTime"
	FieldEndTime         = "endTime"
	FieldDurationSeconds = "durationSeconds"
	FieldNote            = "note"
	FieldProjectID       = "projectID"
	FieldAreaOfFocusID   = "areaOfFocusID"
	FieldCostCode        = "costCode"
	FieldUserID          = "userID"
)

// TimeEntrySortField selects the ordering of a listed entry collection.
type TimeEntrySortField string

const (
	SortByStartTime TimeEntrySortField = "startTime"
	SortByDate      TimeEntrySortField = "date"
	SortByDuration  TimeEntrySortField = "duration"
)
