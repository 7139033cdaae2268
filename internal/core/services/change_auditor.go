package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tracknest/timetrack_app/internal/core/domain"
	"github.com/tracknest/timetrack_app/internal/core/timeclock"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
)

// noneDisplay is what an absent or unresolvable value reads as in the
// audit trail.
const noneDisplay = "None"

// trackedFields is the stable order change records are emitted in.
var trackedFields = []string{
	domain.FieldDate,
	domain.FieldStartTime,
	domain.FieldEndTime,
	domain.FieldDurationSeconds,
	domain.FieldNote,
	domain.FieldProjectID,
	domain.FieldAreaOfFocusID,
	domain.FieldCostCode,
	domain.FieldUserID,
}

// ChangeAuditor diffs a stored time entry against a proposed update and
// emits the audit records for every field whose display value changed.
// It is pure: it never mutates its inputs and never persists anything.
type ChangeAuditor struct {
	resolver portssvc.ReferenceResolver
}

// NewChangeAuditor creates a ChangeAuditor backed by the given resolver.
func NewChangeAuditor(resolver portssvc.ReferenceResolver) *ChangeAuditor {
	return &ChangeAuditor{resolver: resolver}
}

// Diff compares previous and proposed field by field and returns one
// ChangeRecord per field whose display value differs, in trackedFields
// order. Comparison is on display values, not raw stored values, so two
// representations of the same instant never produce a spurious record.
// Foreign keys are resolved to display names frozen at the moment of the
// change; a resolution miss degrades to "None" rather than failing.
func (a *ChangeAuditor) Diff(ctx context.Context, previous, proposed domain.TimeEntry, actor string, now time.Time) []domain.ChangeRecord {
	var records []domain.ChangeRecord
	for _, field := range trackedFields {
		oldVal := a.display(ctx, previous, field)
		newVal := a.display(ctx, proposed, field)
		if oldVal == newVal {
			continue
		}
		records = append(records, domain.ChangeRecord{
			RecordID:  uuid.NewString(),
			EntryID:   previous.EntryID,
			Field:     field,
			OldValue:  oldVal,
			NewValue:  newVal,
			ChangedBy: actor,
			ChangedAt: now,
		})
	}
	return records
}

func (a *ChangeAuditor) display(ctx context.Context, e domain.TimeEntry, field string) string {
	switch field {
	case domain.FieldDate:
		return e.Date.Format("2006-01-02")
	case domain.FieldStartTime:
		return timeclock.FormatClock(e.StartAt)
	case domain.FieldEndTime:
		if e.EndAt == nil {
			return noneDisplay
		}
		return timeclock.FormatClock(*e.EndAt)
	case domain.FieldDurationSeconds:
		return timeclock.FormatDurationHours(e.DurationSeconds)
	case domain.FieldNote:
		if e.Note == "" {
			return noneDisplay
		}
		return e.Note
	case domain.FieldProjectID:
		return a.resolve(ctx, domain.RefProject, e.ProjectID)
	case domain.FieldAreaOfFocusID:
		return a.resolve(ctx, domain.RefAreaOfFocus, e.AreaOfFocusID)
	case domain.FieldCostCode:
		return a.resolve(ctx, domain.RefCostCode, e.CostCode)
	case domain.FieldUserID:
		return a.resolve(ctx, domain.RefUser, e.UserID)
	}
	return noneDisplay
}

func (a *ChangeAuditor) resolve(ctx context.Context, kind domain.ReferenceKind, id string) string {
	if id == "" || a.resolver == nil {
		return noneDisplay
	}
	return a.resolver.ResolveDisplayName(ctx, kind, id)
}
