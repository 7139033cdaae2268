package services

import (
	"context"

	"github.com/tracknest/timetrack_app/internal/core/domain"
	"github.com/tracknest/timetrack_app/internal/dto"
)

// TimeEntryReaderSvc defines read operations for time entries.
type TimeEntryReaderSvc interface {
	// GetEntryByID retrieves an entry including its history.
	GetEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error)

	// ListEntries retrieves a filtered, ordered list of entries.
	ListEntries(ctx context.Context, params dto.ListTimeEntriesParams) ([]domain.TimeEntry, error)

	// GetEntryHistory retrieves the audit trail of an entry, oldest first.
	GetEntryHistory(ctx context.Context, entryID string) ([]domain.ChangeRecord, error)
}

// TimeEntryWriterSvc defines commit operations for time entries. Both
// writes take the raw pending-edit strings and run the full
// validate/parse/reconcile pipeline before anything is persisted.
type TimeEntryWriterSvc interface {
	// CreateEntry reconciles and persists a new entry.
	CreateEntry(ctx context.Context, req dto.CreateTimeEntryRequest, actorUserID string) (*domain.TimeEntry, error)

	// UpdateEntry reconciles an edit, diffs it against the stored entry and
	// appends the resulting change records to the entry's history.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateTimeEntryRequest, actorUserID string) (*domain.TimeEntry, error)

	// DeleteEntry removes an entry and its history.
	DeleteEntry(ctx context.Context, entryID string, actorUserID string) error
}

// TimeEntryValidationSvc exposes keystroke-level validation to the UI.
type TimeEntryValidationSvc interface {
	// ValidatePending checks the raw text of each named field and returns
	// an inline message per field that is invalid-so-far.
	ValidatePending(fields map[string]string) map[string]string
}

// TimeEntrySvcFacade combines all time-entry service interfaces.
type TimeEntrySvcFacade interface {
	TimeEntryReaderSvc
	TimeEntryWriterSvc
	TimeEntryValidationSvc
}

// EntryFeedSvc maintains the in-memory entry list under store snapshot
// pushes and locally-applied optimistic mutations.
type EntryFeedSvc interface {
	// ApplySnapshot merges an authoritative full-collection push.
	ApplySnapshot(entries []domain.TimeEntry)

	// ApplyLocalAdd inserts an optimistic local entry immediately.
	ApplyLocalAdd(entry domain.TimeEntry)

	// ApplyLocalUpdate applies an optimistic local edit immediately.
	ApplyLocalUpdate(entry domain.TimeEntry)

	// ApplyLocalDelete removes an entry immediately and masks it against
	// stale snapshots that still contain it.
	ApplyLocalDelete(entryID string)

	// SetSort selects the list ordering.
	SetSort(field domain.TimeEntrySortField, desc bool)

	// List returns the current reconciled, ordered entry list.
	List() []domain.TimeEntry
}
