package services

import (
	"sort"
	"sync"

	"github.com/tracknest/timetrack_app/internal/core/domain"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
)

// entryFeed keeps the in-memory entry list consistent under two event
// sources: authoritative full snapshots pushed by the store (which may lag
// local actions) and optimistic local mutations applied immediately.
//
// The policy favors UI stability over strict consistency: a locally
// deleted entry is tombstoned and a stale snapshot that still carries it
// cannot flicker it back in; the tombstone clears once a snapshot omits
// the id. Local adds and edits win over older snapshots until the store
// echoes a copy at least as new, at which point the server copy (with its
// server-assigned fields) is adopted.
type entryFeed struct {
	mu       sync.Mutex
	entries  map[string]domain.TimeEntry
	local    map[string]struct{} // unconfirmed optimistic adds/updates
	deleted  map[string]struct{} // tombstones for locally deleted ids
	sortBy   domain.TimeEntrySortField
	sortDesc bool
}

// NewEntryFeed creates an empty feed sorted by start time, newest first.
func NewEntryFeed() portssvc.EntryFeedSvc {
	return &entryFeed{
		entries:  make(map[string]domain.TimeEntry),
		local:    make(map[string]struct{}),
		deleted:  make(map[string]struct{}),
		sortBy:   domain.SortByStartTime,
		sortDesc: true,
	}
}

var _ portssvc.EntryFeedSvc = (*entryFeed)(nil)

func (f *entryFeed) ApplySnapshot(snapshot []domain.TimeEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := make(map[string]domain.TimeEntry, len(snapshot))
	seen := make(map[string]struct{}, len(snapshot))
	for _, e := range snapshot {
		seen[e.EntryID] = struct{}{}
		if _, dead := f.deleted[e.EntryID]; dead {
			// Stale push that predates the local delete.
			continue
		}
		if _, dirty := f.local[e.EntryID]; dirty {
			cur := f.entries[e.EntryID]
			if e.LastUpdatedAt.Before(cur.LastUpdatedAt) {
				// Snapshot lags the local edit; keep the local copy.
				next[e.EntryID] = cur
				continue
			}
			// Server echo caught up: adopt it and stop preferring local.
			delete(f.local, e.EntryID)
		}
		next[e.EntryID] = e
	}

	// Local adds the snapshot has not seen yet stay visible.
	for id := range f.local {
		if _, ok := next[id]; !ok {
			next[id] = f.entries[id]
		}
	}

	// A snapshot that omits a tombstoned id confirms the delete.
	for id := range f.deleted {
		if _, ok := seen[id]; !ok {
			delete(f.deleted, id)
		}
	}

	f.entries = next
}

func (f *entryFeed) ApplyLocalAdd(entry domain.TimeEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[entry.EntryID] = entry
	f.local[entry.EntryID] = struct{}{}
	delete(f.deleted, entry.EntryID)
}

func (f *entryFeed) ApplyLocalUpdate(entry domain.TimeEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[entry.EntryID] = entry
	f.local[entry.EntryID] = struct{}{}
	delete(f.deleted, entry.EntryID)
}

func (f *entryFeed) ApplyLocalDelete(entryID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, entryID)
	delete(f.local, entryID)
	f.deleted[entryID] = struct{}{}
}

func (f *entryFeed) SetSort(field domain.TimeEntrySortField, desc bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sortBy = field
	f.sortDesc = desc
}

func (f *entryFeed) List() []domain.TimeEntry {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.TimeEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}

	sortBy, desc := f.sortBy, f.sortDesc
	// Tie-break on id so equal keys keep a deterministic order.
	sort.SliceStable(out, func(i, j int) bool {
		if equalByField(out[i], out[j], sortBy) {
			return out[i].EntryID < out[j].EntryID
		}
		if desc {
			return lessByField(out[j], out[i], sortBy)
		}
		return lessByField(out[i], out[j], sortBy)
	})
	return out
}

func lessByField(a, b domain.TimeEntry, field domain.TimeEntrySortField) bool {
	switch field {
	case domain.SortByDate:
		return a.Date.Before(b.Date)
	case domain.SortByDuration:
		return a.DurationSeconds < b.DurationSeconds
	default:
		return a.StartAt.Before(b.StartAt)
	}
}

func equalByField(a, b domain.TimeEntry, field domain.TimeEntrySortField) bool {
	switch field {
	case domain.SortByDate:
		return a.Date.Equal(b.Date)
	case domain.SortByDuration:
		return a.DurationSeconds == b.DurationSeconds
	default:
		return a.StartAt.Equal(b.StartAt)
	}
}
