package models

import "time"

// TimeEntry is the database representation of a tracked unit of work.
type TimeEntry struct {
	EntryID         string     `db:"entry_id"`
	UserID          string     `db:"user_id"`
	ProjectID       string     `db:"project_id"`
	AreaOfFocusID   string     `db:"area_of_focus_id"` // Nullable
	CostCode        string     `db:"cost_code"`        // Nullable
	EntryDate       time.Time  `db:"entry_date"`
	StartAt         time.Time  `db:"start_at"`
	EndAt           *time.Time `db:"end_at"`
	DurationSeconds int64      `db:"duration_seconds"`
	Note            string     `db:"note"`
	AuditFields
}

// ChangeRecord is the database representation of one audit trail row.
// Rows are insert-only; they are never updated or deleted while their
// entry exists.
type ChangeRecord struct {
	RecordID  string    `db:"record_id"`
	EntryID   string    `db:"entry_id"`
	Seq       int64     `db:"seq"` // Keeps same-timestamp commits ordered
	Field     string    `db:"field"`
	OldValue  string    `db:"old_value"`
	NewValue  string    `db:"new_value"`
	ChangedBy string    `db:"changed_by"`
	ChangedAt time.Time `db:"changed_at"`
}
