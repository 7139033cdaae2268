package repositories

import (
	"context"
	"time"

	"github.com/tracknest/timetrack_app/internal/core/domain"
)

// TimeEntryListFilter narrows and orders a listed entry collection.
// AfterStartAt and AfterEntryID form a keyset cursor; when set, only rows
// past that (start_at, entry_id) position are returned. The cursor is only
// honored for start-time ordering.
type TimeEntryListFilter struct {
	UserID       string // optional
	ProjectID    string // optional
	SortBy       domain.TimeEntrySortField
	SortDesc     bool
	Limit        int
	Offset       int
	AfterStartAt *time.Time // optional
	AfterEntryID string     // optional
}

// TimeEntryReader defines read operations for time entries.
type TimeEntryReader interface {
	// FindEntryByID retrieves a specific entry, including its history.
	FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error)

	// FindEntries retrieves a filtered, ordered, paginated list of entries
	// without their history.
	FindEntries(ctx context.Context, filter TimeEntryListFilter) ([]domain.TimeEntry, error)

	// FindChangeRecords retrieves the audit trail of an entry, oldest first.
	FindChangeRecords(ctx context.Context, entryID string) ([]domain.ChangeRecord, error)
}

// TimeEntryWriter defines write operations for time entries.
type TimeEntryWriter interface {
	// SaveEntry persists an entry and appends the given change records to
	// its history atomically. Existing history rows are never touched.
	SaveEntry(ctx context.Context, entry domain.TimeEntry, newRecords []domain.ChangeRecord) error

	// DeleteEntry removes an entry and its history. Deletion is a caller
	// concern; the reconciliation engine never invokes it itself.
	DeleteEntry(ctx context.Context, entryID string) error
}

// TimeEntryRepositoryFacade combines all time-entry repository interfaces.
type TimeEntryRepositoryFacade interface {
	TimeEntryReader
	TimeEntryWriter
}
