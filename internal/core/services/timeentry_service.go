package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tracknest/timetrack_app/internal/apperrors"
	"github.com/tracknest/timetrack_app/internal/core/domain"
	portsrepo "github.com/tracknest/timetrack_app/internal/core/ports/repositories"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
	"github.com/tracknest/timetrack_app/internal/core/timeclock"
	"github.com/tracknest/timetrack_app/internal/dto"
	"github.com/tracknest/timetrack_app/internal/middleware"
	"github.com/tracknest/timetrack_app/internal/utils/pagination"
)

// timeEntryService runs the commit pipeline for time entries: keystroke
// validation, parsing with AM/PM inference, start/end/duration
// reconciliation, change auditing, and persistence. The feed receives the
// optimistic local copy after every successful write.
type timeEntryService struct {
	entryRepo portsrepo.TimeEntryRepositoryFacade
	auditor   *ChangeAuditor
	feed      portssvc.EntryFeedSvc
}

// NewTimeEntryService creates a new time entry service.
func NewTimeEntryService(entryRepo portsrepo.TimeEntryRepositoryFacade, resolver portssvc.ReferenceResolver, feed portssvc.EntryFeedSvc) portssvc.TimeEntrySvcFacade {
	return &timeEntryService{
		entryRepo: entryRepo,
		auditor:   NewChangeAuditor(resolver),
		feed:      feed,
	}
}

var _ portssvc.TimeEntrySvcFacade = (*timeEntryService)(nil)

// validatableFields are the per-field validation slots the UI tracks.
var validatableFields = map[string]struct{}{
	dto.FieldNewStartTime:  {},
	dto.FieldNewEndTime:    {},
	dto.FieldEditStartTime: {},
	dto.FieldEditEndTime:   {},
}

// ValidatePending implements keystroke-level validation. Unknown field
// names are ignored so stale UI state cannot produce spurious errors.
func (s *timeEntryService) ValidatePending(fields map[string]string) map[string]string {
	errs := make(map[string]string)
	for field, raw := range fields {
		if _, ok := validatableFields[field]; !ok {
			continue
		}
		if msg := timeclock.ValidateInput(raw); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// parseTimeField runs commit-time parsing of one raw time text, mapping
// parser errors to field errors the handler can place inline.
func parseTimeField(field, raw string, anchor *timeclock.ClockTime) (*timeclock.ClockTime, error) {
	if raw == "" {
		return nil, nil
	}
	if msg := timeclock.ValidateInput(raw); msg != "" {
		return nil, apperrors.NewFieldError(field, msg, apperrors.ErrInvalidTimeFormat)
	}
	ct, err := timeclock.Parse(raw, anchor)
	if err != nil {
		if errors.Is(err, apperrors.ErrIncompleteInput) {
			return nil, apperrors.NewFieldError(field, "Enter a complete time", apperrors.ErrIncompleteInput)
		}
		return nil, apperrors.NewFieldError(field, timeclock.MsgInvalidTime, apperrors.ErrInvalidTimeFormat)
	}
	return &ct, nil
}

func parseDurationField(field, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperrors.NewFieldError(field, "Enter hours like 1.5", apperrors.ErrInvalidTimeFormat)
	}
	return &d, nil
}

// CreateEntry reconciles the pending-edit strings and persists a new entry.
func (s *timeEntryService) CreateEntry(ctx context.Context, req dto.CreateTimeEntryRequest, actorUserID string) (*domain.TimeEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	if req.Pending.StartTime == "" {
		return nil, apperrors.NewFieldError(dto.FieldNewStartTime, "Start time is required", apperrors.ErrMissingRequiredField)
	}
	start, err := parseTimeField(dto.FieldNewStartTime, req.Pending.StartTime, nil)
	if err != nil {
		return nil, err
	}
	end, err := parseTimeField(dto.FieldNewEndTime, req.Pending.EndTime, start)
	if err != nil {
		return nil, err
	}
	durationHours, err := parseDurationField(dto.FieldNewDuration, req.Pending.DurationHours)
	if err != nil {
		return nil, err
	}
	if end == nil && durationHours == nil {
		return nil, apperrors.NewFieldError(dto.FieldNewEndTime, "An end time or duration is required", apperrors.ErrMissingRequiredField)
	}

	span, err := timeclock.Reconcile(date, *start, end, durationHours)
	if err != nil {
		return nil, err
	}

	userID := req.UserID
	if userID == "" {
		userID = actorUserID
	}

	now := time.Now().UTC()
	entry := domain.TimeEntry{
		EntryID:         uuid.NewString(),
		UserID:          userID,
		ProjectID:       req.ProjectID,
		AreaOfFocusID:   req.AreaOfFocusID,
		CostCode:        req.CostCode,
		Date:            date,
		StartAt:         span.StartAt,
		EndAt:           &span.EndAt,
		DurationSeconds: span.DurationSeconds,
		Note:            req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry, nil); err != nil {
		logger.Error("Failed to save time entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save time entry: %w", err)
	}

	if s.feed != nil {
		s.feed.ApplyLocalAdd(entry)
	}
	logger.Info("Time entry created", slog.String("entry_id", entry.EntryID), slog.Int64("duration_seconds", entry.DurationSeconds))
	return &entry, nil
}

// UpdateEntry reconciles an edit against the stored entry, appends the
// display-value diff to the entry's history and persists the result. If no
// display value changed, nothing is written and no record is emitted.
func (s *timeEntryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateTimeEntryRequest, actorUserID string) (*domain.TimeEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	previous, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	proposed := *previous
	if req.UserID != nil {
		proposed.UserID = *req.UserID
	}
	if req.ProjectID != nil {
		proposed.ProjectID = *req.ProjectID
	}
	if req.AreaOfFocusID != nil {
		proposed.AreaOfFocusID = *req.AreaOfFocusID
	}
	if req.CostCode != nil {
		proposed.CostCode = *req.CostCode
	}
	if req.Note != nil {
		proposed.Note = *req.Note
	}
	if req.Date != nil {
		date, perr := time.Parse("2006-01-02", *req.Date)
		if perr != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		proposed.Date = date
	}

	// An edit that touches neither the time fields nor the date leaves the
	// stored span untouched. Otherwise reconciliation is driven by the
	// fields the user is not typing into: fields absent from the pending
	// edit fall back to stored values.
	if !req.Pending.IsZero() || req.Date != nil {
		start, err := parseTimeField(dto.FieldEditStartTime, req.Pending.StartTime, nil)
		if err != nil {
			return nil, err
		}
		if start == nil {
			ct := timeclock.FromTime(previous.StartAt)
			start = &ct
		}
		end, err := parseTimeField(dto.FieldEditEndTime, req.Pending.EndTime, start)
		if err != nil {
			return nil, err
		}
		durationHours, err := parseDurationField(dto.FieldEditDuration, req.Pending.DurationHours)
		if err != nil {
			return nil, err
		}
		if end == nil && durationHours == nil && previous.EndAt != nil {
			ct := timeclock.FromTime(*previous.EndAt)
			end = &ct
		}

		span, err := timeclock.Reconcile(proposed.Date, *start, end, durationHours)
		if err != nil {
			return nil, err
		}
		proposed.StartAt = span.StartAt
		proposed.EndAt = &span.EndAt
		proposed.DurationSeconds = span.DurationSeconds
	}

	now := time.Now().UTC()
	records := s.auditor.Diff(ctx, *previous, proposed, actorUserID, now)
	if len(records) == 0 {
		logger.Info("Time entry edit produced no visible change", slog.String("entry_id", entryID))
		return previous, nil
	}

	proposed.History = append(append([]domain.ChangeRecord(nil), previous.History...), records...)
	proposed.LastUpdatedAt = now
	proposed.LastUpdatedBy = actorUserID

	if err := s.entryRepo.SaveEntry(ctx, proposed, records); err != nil {
		logger.Error("Failed to update time entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update time entry: %w", err)
	}

	if s.feed != nil {
		s.feed.ApplyLocalUpdate(proposed)
	}
	logger.Info("Time entry updated", slog.String("entry_id", entryID), slog.Int("changed_fields", len(records)))
	return &proposed, nil
}

// DeleteEntry removes an entry and its history.
func (s *timeEntryService) DeleteEntry(ctx context.Context, entryID string, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}
	if s.feed != nil {
		s.feed.ApplyLocalDelete(entryID)
	}
	logger.Info("Time entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", actorUserID))
	return nil
}

// GetEntryByID retrieves an entry including its history.
func (s *timeEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	return s.entryRepo.FindEntryByID(ctx, entryID)
}

// GetEntryHistory retrieves the audit trail of an entry, oldest first.
func (s *timeEntryService) GetEntryHistory(ctx context.Context, entryID string) ([]domain.ChangeRecord, error) {
	return s.entryRepo.FindChangeRecords(ctx, entryID)
}

// ListEntries retrieves a filtered, ordered list of entries.
func (s *timeEntryService) ListEntries(ctx context.Context, params dto.ListTimeEntriesParams) ([]domain.TimeEntry, error) {
	filter := portsrepo.TimeEntryListFilter{
		UserID:    params.UserID,
		ProjectID: params.ProjectID,
		SortBy:    domain.TimeEntrySortField(params.SortBy),
		SortDesc:  params.SortDir != "asc",
		Limit:     params.Limit,
		Offset:    params.Offset,
	}
	if filter.SortBy == "" {
		filter.SortBy = domain.SortByStartTime
	}
	if params.PageToken != "" {
		afterStartAt, afterEntryID, err := pagination.DecodeCursor(params.PageToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		filter.AfterStartAt = &afterStartAt
		filter.AfterEntryID = afterEntryID
	}

	entries, err := s.entryRepo.FindEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.feed == nil {
		return entries, nil
	}

	// The fetched page is a store snapshot: reconciling it through the
	// feed keeps unconfirmed local writes visible and locally deleted
	// entries masked until the store catches up.
	s.feed.SetSort(filter.SortBy, filter.SortDesc)
	s.feed.ApplySnapshot(entries)
	return s.feed.List(), nil
}
