package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracknest/timetrack_app/internal/core/domain"
	"github.com/tracknest/timetrack_app/internal/core/services"
)

func feedEntry(id string, startAt time.Time, updatedAt time.Time) domain.TimeEntry {
	e := domain.TimeEntry{
		EntryID:         id,
		UserID:          "user-1",
		ProjectID:       "proj-1",
		Date:            startAt.Truncate(24 * time.Hour),
		StartAt:         startAt,
		DurationSeconds: 3600,
	}
	e.LastUpdatedAt = updatedAt
	return e
}

func entryIDs(entries []domain.TimeEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	return ids
}

func TestEntryFeedSnapshotPopulates(t *testing.T) {
	feed := services.NewEntryFeed()
	now := time.Now().UTC()

	feed.ApplySnapshot([]domain.TimeEntry{
		feedEntry("a", now.Add(-2*time.Hour), now),
		feedEntry("b", now.Add(-1*time.Hour), now),
	})

	list := feed.List()
	require.Len(t, list, 2)
	// Default ordering is start time, newest first.
	assert.Equal(t, []string{"b", "a"}, entryIDs(list))
}

func TestEntryFeedLocalDeleteMasksStaleSnapshot(t *testing.T) {
	feed := services.NewEntryFeed()
	now := time.Now().UTC()
	a := feedEntry("a", now.Add(-2*time.Hour), now)
	b := feedEntry("b", now.Add(-1*time.Hour), now)

	feed.ApplySnapshot([]domain.TimeEntry{a, b})
	feed.ApplyLocalDelete("a")

	// A stale push that still carries the deleted entry must not
	// resurrect it.
	feed.ApplySnapshot([]domain.TimeEntry{a, b})
	assert.Equal(t, []string{"b"}, entryIDs(feed.List()))

	// Once a snapshot omits the id the tombstone clears, so a genuine
	// re-creation under the same id becomes visible again.
	feed.ApplySnapshot([]domain.TimeEntry{b})
	feed.ApplySnapshot([]domain.TimeEntry{a, b})
	assert.ElementsMatch(t, []string{"a", "b"}, entryIDs(feed.List()))
}

func TestEntryFeedLocalEditWinsOverLaggingSnapshot(t *testing.T) {
	feed := services.NewEntryFeed()
	now := time.Now().UTC()
	stale := feedEntry("a", now.Add(-2*time.Hour), now.Add(-time.Minute))

	feed.ApplySnapshot([]domain.TimeEntry{stale})

	edited := stale
	edited.Note = "edited locally"
	edited.LastUpdatedAt = now
	feed.ApplyLocalUpdate(edited)

	// The store pushes the pre-edit copy again; the local copy stays.
	feed.ApplySnapshot([]domain.TimeEntry{stale})
	list := feed.List()
	require.Len(t, list, 1)
	assert.Equal(t, "edited locally", list[0].Note)

	// The echo catches up: the server copy is adopted.
	echo := edited
	echo.Note = "edited locally"
	echo.LastUpdatedAt = now.Add(time.Second)
	feed.ApplySnapshot([]domain.TimeEntry{echo})
	list = feed.List()
	require.Len(t, list, 1)
	assert.Equal(t, echo.LastUpdatedAt, list[0].LastUpdatedAt)

	// After adoption the entry is no longer locally pinned, so an older
	// push replaces it like any other server copy.
	feed.ApplySnapshot([]domain.TimeEntry{stale})
	list = feed.List()
	require.Len(t, list, 1)
	assert.Equal(t, stale.LastUpdatedAt, list[0].LastUpdatedAt)
}

func TestEntryFeedLocalAddSurvivesSnapshotWithoutIt(t *testing.T) {
	feed := services.NewEntryFeed()
	now := time.Now().UTC()
	server := feedEntry("a", now.Add(-2*time.Hour), now)
	localAdd := feedEntry("pending", now.Add(-time.Minute), now)

	feed.ApplySnapshot([]domain.TimeEntry{server})
	feed.ApplyLocalAdd(localAdd)

	// The snapshot has not caught up with the optimistic add yet.
	feed.ApplySnapshot([]domain.TimeEntry{server})
	assert.ElementsMatch(t, []string{"a", "pending"}, entryIDs(feed.List()))
}

func TestEntryFeedSetSort(t *testing.T) {
	feed := services.NewEntryFeed()
	now := time.Now().UTC()

	short := feedEntry("short", now.Add(-3*time.Hour), now)
	short.DurationSeconds = 1800
	long := feedEntry("long", now.Add(-1*time.Hour), now)
	long.DurationSeconds = 7200
	mid := feedEntry("mid", now.Add(-2*time.Hour), now)
	mid.DurationSeconds = 3600

	feed.ApplySnapshot([]domain.TimeEntry{short, long, mid})

	feed.SetSort(domain.SortByDuration, false)
	assert.Equal(t, []string{"short", "mid", "long"}, entryIDs(feed.List()))

	feed.SetSort(domain.SortByDuration, true)
	assert.Equal(t, []string{"long", "mid", "short"}, entryIDs(feed.List()))
}

func TestEntryFeedSortTieBreaksOnEntryID(t *testing.T) {
	feed := services.NewEntryFeed()
	now := time.Now().UTC()
	start := now.Add(-time.Hour)

	feed.ApplySnapshot([]domain.TimeEntry{
		feedEntry("b", start, now),
		feedEntry("a", start, now),
		feedEntry("c", start, now),
	})

	// Equal sort keys fall back to id order so repeated List calls agree.
	assert.Equal(t, []string{"a", "b", "c"}, entryIDs(feed.List()))
	assert.Equal(t, []string{"a", "b", "c"}, entryIDs(feed.List()))
}
