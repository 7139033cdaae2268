package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tracknest/timetrack_app/internal/apperrors"
	"github.com/tracknest/timetrack_app/internal/core/domain"
	portsrepo "github.com/tracknest/timetrack_app/internal/core/ports/repositories"
	"github.com/tracknest/timetrack_app/internal/models"
	"github.com/tracknest/timetrack_app/internal/utils/mapping"
)

type PgxTimeEntryRepository struct {
	BaseRepository
}

func newPgxTimeEntryRepository(db *pgxpool.Pool) portsrepo.TimeEntryRepositoryFacade {
	return &PgxTimeEntryRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxTimeEntryRepository implements portsrepo.TimeEntryRepositoryFacade
var _ portsrepo.TimeEntryRepositoryFacade = (*PgxTimeEntryRepository)(nil)

// sortColumns whitelists the ORDER BY targets for FindEntries. Anything
// outside this map falls back to start_at.
var sortColumns = map[domain.TimeEntrySortField]string{
	domain.SortByStartTime: "start_at",
	domain.SortByDate:      "entry_date",
	domain.SortByDuration:  "duration_seconds",
}

const timeEntryColumns = `entry_id, user_id, project_id, area_of_focus_id, cost_code, entry_date, start_at, end_at, duration_seconds, note, created_at, created_by, last_updated_at, last_updated_by`

func scanTimeEntry(row pgx.Row) (models.TimeEntry, error) {
	var m models.TimeEntry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.ProjectID,
		&m.AreaOfFocusID,
		&m.CostCode,
		&m.EntryDate,
		&m.StartAt,
		&m.EndAt,
		&m.DurationSeconds,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEntry upserts the entry row and appends the given change records in a
// single transaction. History rows are insert-only; nothing here ever
// updates or deletes an existing change_records row.
func (r *PgxTimeEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry, newRecords []domain.ChangeRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	modelEntry := mapping.ToModelTimeEntry(entry)
	entryQuery := `
        INSERT INTO time_entries (` + timeEntryColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (entry_id) DO UPDATE SET
            user_id = EXCLUDED.user_id,
            project_id = EXCLUDED.project_id,
            area_of_focus_id = EXCLUDED.area_of_focus_id,
            cost_code = EXCLUDED.cost_code,
            entry_date = EXCLUDED.entry_date,
            start_at = EXCLUDED.start_at,
            end_at = EXCLUDED.end_at,
            duration_seconds = EXCLUDED.duration_seconds,
            note = EXCLUDED.note,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.UserID,
		modelEntry.ProjectID,
		modelEntry.AreaOfFocusID,
		modelEntry.CostCode,
		modelEntry.EntryDate,
		modelEntry.StartAt,
		modelEntry.EndAt,
		modelEntry.DurationSeconds,
		modelEntry.Note,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save time entry %s: %w", entry.EntryID, err)
	}

	if len(newRecords) > 0 {
		// seq continues from the current maximum so records with an equal
		// changed_at keep their commit order across saves.
		var nextSeq int64
		seqQuery := `SELECT COALESCE(MAX(seq), 0) + 1 FROM change_records WHERE entry_id = $1;`
		if err := tx.QueryRow(ctx, seqQuery, entry.EntryID).Scan(&nextSeq); err != nil {
			return fmt.Errorf("failed to compute next change record seq for entry %s: %w", entry.EntryID, err)
		}

		recordQuery := `
            INSERT INTO change_records (record_id, entry_id, seq, field, old_value, new_value, changed_by, changed_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
        `
		for i, record := range newRecords {
			modelRecord := mapping.ToModelChangeRecord(record, nextSeq+int64(i))
			_, err = tx.Exec(ctx, recordQuery,
				modelRecord.RecordID,
				modelRecord.EntryID,
				modelRecord.Seq,
				modelRecord.Field,
				modelRecord.OldValue,
				modelRecord.NewValue,
				modelRecord.ChangedBy,
				modelRecord.ChangedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to append change record for entry %s: %w", entry.EntryID, err)
			}
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTimeEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	// History rows only go away together with their entry.
	if _, err := tx.Exec(ctx, `DELETE FROM change_records WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to delete change records for entry %s: %w", entryID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM time_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete time entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTimeEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE entry_id = $1;`
	modelEntry, err := scanTimeEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find time entry by ID %s: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainTimeEntry(modelEntry)
	history, err := r.FindChangeRecords(ctx, entryID)
	if err != nil {
		return nil, err
	}
	domainEntry.History = history
	return &domainEntry, nil
}

func (r *PgxTimeEntryRepository) FindEntries(ctx context.Context, filter portsrepo.TimeEntryListFilter) ([]domain.TimeEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = "start_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE 1=1`
	args := []any{}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.ProjectID != "" {
		args = append(args, filter.ProjectID)
		query += fmt.Sprintf(" AND project_id = $%d", len(args))
	}
	// Keyset cursor. Row comparison matches the ORDER BY below, so the
	// cursor only applies when ordering by start time.
	if filter.AfterStartAt != nil && sortColumn == "start_at" {
		op := ">"
		if filter.SortDesc {
			op = "<"
		}
		args = append(args, *filter.AfterStartAt)
		startArg := len(args)
		args = append(args, filter.AfterEntryID)
		query += fmt.Sprintf(" AND (start_at, entry_id) %s ($%d, $%d)", op, startArg, len(args))
	}
	// entry_id breaks ties so page boundaries stay stable.
	query += fmt.Sprintf(" ORDER BY %s %s, entry_id %s", sortColumn, direction, direction)
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		modelEntry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainTimeEntry(modelEntry))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating time entry rows: %w", rows.Err())
	}

	return entries, nil
}

func (r *PgxTimeEntryRepository) FindChangeRecords(ctx context.Context, entryID string) ([]domain.ChangeRecord, error) {
	query := `
        SELECT record_id, entry_id, field, old_value, new_value, changed_by, changed_at
        FROM change_records
        WHERE entry_id = $1
        ORDER BY changed_at ASC, seq ASC;
    `
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query change records for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	records := []domain.ChangeRecord{}
	for rows.Next() {
		var m models.ChangeRecord
		err := rows.Scan(
			&m.RecordID,
			&m.EntryID,
			&m.Field,
			&m.OldValue,
			&m.NewValue,
			&m.ChangedBy,
			&m.ChangedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change record row: %w", err)
		}
		records = append(records, mapping.ToDomainChangeRecord(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating change record rows: %w", rows.Err())
	}

	return records, nil
}
