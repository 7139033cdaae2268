package mapping

import (
	"github.com/tracknest/timetrack_app/internal/core/domain"
	"github.com/tracknest/timetrack_app/internal/models"
)

// ToModelTimeEntry converts a domain.TimeEntry to its database model.
// History travels separately as ChangeRecord rows.
func ToModelTimeEntry(d domain.TimeEntry) models.TimeEntry {
	return models.TimeEntry{
		EntryID:         d.EntryID,
		UserID:          d.UserID,
		ProjectID:       d.ProjectID,
		AreaOfFocusID:   d.AreaOfFocusID,
		CostCode:        d.CostCode,
		EntryDate:       d.Date,
		StartAt:         d.StartAt,
		EndAt:           d.EndAt,
		DurationSeconds: d.DurationSeconds,
		Note:            d.Note,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimeEntry converts a model row back to the domain type.
func ToDomainTimeEntry(m models.TimeEntry) domain.TimeEntry {
	return domain.TimeEntry{
		EntryID:         m.EntryID,
		UserID:          m.UserID,
		ProjectID:       m.ProjectID,
		AreaOfFocusID:   m.AreaOfFocusID,
		CostCode:        m.CostCode,
		Date:            m.EntryDate,
		StartAt:         m.StartAt,
		EndAt:           m.EndAt,
		DurationSeconds: m.DurationSeconds,
		Note:            m.Note,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelChangeRecord converts one audit record for insertion. seq is the
// position of the record within its commit batch.
func ToModelChangeRecord(d domain.ChangeRecord, seq int64) models.ChangeRecord {
	return models.ChangeRecord{
		RecordID:  d.RecordID,
		EntryID:   d.EntryID,
		Seq:       seq,
		Field:     d.Field,
		OldValue:  d.OldValue,
		NewValue:  d.NewValue,
		ChangedBy: d.ChangedBy,
		ChangedAt: d.ChangedAt,
	}
}

// ToDomainChangeRecord converts a stored audit row back to the domain type.
func ToDomainChangeRecord(m models.ChangeRecord) domain.ChangeRecord {
	return domain.ChangeRecord{
		RecordID:  m.RecordID,
		EntryID:   m.EntryID,
		Field:     m.Field,
		OldValue:  m.OldValue,
		NewValue:  m.NewValue,
		ChangedBy: m.ChangedBy,
		ChangedAt: m.ChangedAt,
	}
}
