package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracknest/timetrack_app/internal/core/domain"
	"github.com/tracknest/timetrack_app/internal/core/services"
)

// stubResolver resolves references from a fixed map; anything else reads
// as "None", matching the degraded-resolution behavior of the real service.
type stubResolver struct {
	names map[string]string
}

func (r *stubResolver) ResolveDisplayName(ctx context.Context, kind domain.ReferenceKind, id string) string {
	if name, ok := r.names[id]; ok {
		return name
	}
	return "None"
}

func newTestResolver() *stubResolver {
	return &stubResolver{names: map[string]string{
		"proj-1": "Website Redesign",
		"proj-2": "Mobile App",
		"area-1": "Engineering",
		"cc-100": "Billable",
		"user-1": "Alice",
	}}
}

func baseEntry() domain.TimeEntry {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	return domain.TimeEntry{
		EntryID:         "entry-1",
		UserID:          "user-1",
		ProjectID:       "proj-1",
		AreaOfFocusID:   "area-1",
		CostCode:        "cc-100",
		Date:            date,
		StartAt:         start,
		EndAt:           &end,
		DurationSeconds: 28800,
		Note:            "sprint work",
	}
}

func TestChangeAuditorDiffNoChanges(t *testing.T) {
	auditor := services.NewChangeAuditor(newTestResolver())
	entry := baseEntry()

	records := auditor.Diff(context.Background(), entry, entry, "user-1", time.Now().UTC())

	assert.Empty(t, records)
}

func TestChangeAuditorDiffSameInstantDifferentRepresentation(t *testing.T) {
	auditor := services.NewChangeAuditor(newTestResolver())
	previous := baseEntry()
	proposed := baseEntry()

	// Same wall-clock values reached through a different time.Time
	// construction must not produce a record: comparison is of display
	// values, not of raw stored values.
	proposed.StartAt = previous.StartAt.Add(30 * time.Second)

	records := auditor.Diff(context.Background(), previous, proposed, "user-1", time.Now().UTC())

	assert.Empty(t, records)
}

func TestChangeAuditorDiffEmitsDisplayValues(t *testing.T) {
	auditor := services.NewChangeAuditor(newTestResolver())
	previous := baseEntry()
	proposed := baseEntry()

	newEnd := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	proposed.EndAt = &newEnd
	proposed.DurationSeconds = 14400

	now := time.Now().UTC()
	records := auditor.Diff(context.Background(), previous, proposed, "user-1", now)

	require.Len(t, records, 2)

	assert.Equal(t, domain.FieldEndTime, records[0].Field)
	assert.Equal(t, "5:00 PM", records[0].OldValue)
	assert.Equal(t, "1:00 PM", records[0].NewValue)

	assert.Equal(t, domain.FieldDurationSeconds, records[1].Field)
	assert.Equal(t, "8.00h", records[1].OldValue)
	assert.Equal(t, "4.00h", records[1].NewValue)

	for _, r := range records {
		assert.Equal(t, "entry-1", r.EntryID)
		assert.Equal(t, "user-1", r.ChangedBy)
		assert.Equal(t, now, r.ChangedAt)
		assert.NotEmpty(t, r.RecordID)
	}
}

func TestChangeAuditorDiffStableFieldOrder(t *testing.T) {
	auditor := services.NewChangeAuditor(newTestResolver())
	previous := baseEntry()
	proposed := baseEntry()

	proposed.Date = previous.Date.AddDate(0, 0, 1)
	proposed.StartAt = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	proposed.Note = "revised"
	proposed.ProjectID = "proj-2"

	records := auditor.Diff(context.Background(), previous, proposed, "user-1", time.Now().UTC())

	require.Len(t, records, 4)
	assert.Equal(t, domain.FieldDate, records[0].Field)
	assert.Equal(t, domain.FieldStartTime, records[1].Field)
	assert.Equal(t, domain.FieldNote, records[2].Field)
	assert.Equal(t, domain.FieldProjectID, records[3].Field)

	assert.Equal(t, "Website Redesign", records[3].OldValue)
	assert.Equal(t, "Mobile App", records[3].NewValue)
}

func TestChangeAuditorDiffResolvesMissingReferencesToNone(t *testing.T) {
	auditor := services.NewChangeAuditor(newTestResolver())
	previous := baseEntry()
	proposed := baseEntry()

	// Clearing the FK and pointing at an unknown id both display as "None".
	proposed.AreaOfFocusID = ""
	proposed.CostCode = "cc-missing"

	records := auditor.Diff(context.Background(), previous, proposed, "user-1", time.Now().UTC())

	require.Len(t, records, 2)
	assert.Equal(t, domain.FieldAreaOfFocusID, records[0].Field)
	assert.Equal(t, "Engineering", records[0].OldValue)
	assert.Equal(t, "None", records[0].NewValue)

	assert.Equal(t, domain.FieldCostCode, records[1].Field)
	assert.Equal(t, "Billable", records[1].OldValue)
	assert.Equal(t, "None", records[1].NewValue)
}

func TestChangeAuditorDiffNilEndAndEmptyNoteDisplayAsNone(t *testing.T) {
	auditor := services.NewChangeAuditor(newTestResolver())
	previous := baseEntry()
	previous.EndAt = nil
	previous.Note = ""

	proposed := baseEntry()

	records := auditor.Diff(context.Background(), previous, proposed, "user-1", time.Now().UTC())

	require.Len(t, records, 2)
	assert.Equal(t, domain.FieldEndTime, records[0].Field)
	assert.Equal(t, "None", records[0].OldValue)
	assert.Equal(t, "5:00 PM", records[0].NewValue)

	assert.Equal(t, domain.FieldNote, records[1].Field)
	assert.Equal(t, "None", records[1].OldValue)
	assert.Equal(t, "sprint work", records[1].NewValue)
}

func TestChangeAuditorDiffDoesNotMutateInputs(t *testing.T) {
	auditor := services.NewChangeAuditor(newTestResolver())
	previous := baseEntry()
	proposed := baseEntry()
	proposed.Note = "changed"

	snapshot := previous
	_ = auditor.Diff(context.Background(), previous, proposed, "user-1", time.Now().UTC())

	assert.Equal(t, snapshot, previous)
	assert.Empty(t, previous.History)
	assert.Empty(t, proposed.History)
}
