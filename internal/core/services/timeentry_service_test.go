package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tracknest/timetrack_app/internal/apperrors"
	"github.com/tracknest/timetrack_app/internal/core/domain"
	portsrepo "github.com/tracknest/timetrack_app/internal/core/ports/repositories"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
	"github.com/tracknest/timetrack_app/internal/core/services"
	"github.com/tracknest/timetrack_app/internal/core/timeclock"
	"github.com/tracknest/timetrack_app/internal/dto"
	"github.com/tracknest/timetrack_app/internal/utils/pagination"
)

// --- Mock TimeEntryRepository ---
type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) SaveEntry(ctx context.Context, entry domain.TimeEntry, newRecords []domain.ChangeRecord) error {
	args := m.Called(ctx, entry, newRecords)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.TimeEntry, error) {
	args := m.Called(ctx, entryID)
	var entry *domain.TimeEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.TimeEntry)
	}
	return entry, args.Error(1)
}

func (m *MockTimeEntryRepository) FindEntries(ctx context.Context, filter portsrepo.TimeEntryListFilter) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, filter)
	var entries []domain.TimeEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.TimeEntry)
	}
	return entries, args.Error(1)
}

func (m *MockTimeEntryRepository) FindChangeRecords(ctx context.Context, entryID string) ([]domain.ChangeRecord, error) {
	args := m.Called(ctx, entryID)
	var records []domain.ChangeRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.ChangeRecord)
	}
	return records, args.Error(1)
}

var _ portsrepo.TimeEntryRepositoryFacade = (*MockTimeEntryRepository)(nil)

// --- Test Suite ---
type TimeEntryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTimeEntryRepository
	feed     portssvc.EntryFeedSvc
	service  portssvc.TimeEntrySvcFacade
}

func (suite *TimeEntryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTimeEntryRepository)
	suite.feed = services.NewEntryFeed()
	suite.service = services.NewTimeEntryService(suite.mockRepo, newTestResolver(), suite.feed)
}

func (suite *TimeEntryServiceTestSuite) storedEntry() *domain.TimeEntry {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	entry := domain.TimeEntry{
		EntryID:         "entry-1",
		UserID:          "user-1",
		ProjectID:       "proj-1",
		Date:            date,
		StartAt:         start,
		EndAt:           &end,
		DurationSeconds: 28800,
	}
	entry.LastUpdatedAt = start
	return &entry
}

// --- CreateEntry ---

func (suite *TimeEntryServiceTestSuite) TestCreateEntryWithEndTime() {
	ctx := context.Background()
	req := dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		Date:      "2025-03-10",
		Pending: dto.PendingEdit{
			StartTime: "9:00 AM",
			EndTime:   "5:00 PM",
		},
	}

	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.StartAt.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)) &&
			e.EndAt != nil && e.EndAt.Equal(time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)) &&
			e.DurationSeconds == 28800
	}), []domain.ChangeRecord(nil)).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(28800), entry.DurationSeconds)
	suite.Equal("user-1", entry.UserID)
	suite.Equal("user-1", entry.CreatedBy)
	suite.Empty(entry.History)
	suite.mockRepo.AssertExpectations(suite.T())

	// The optimistic copy shows up in the feed immediately.
	list := suite.feed.List()
	suite.Require().Len(list, 1)
	suite.Equal(entry.EntryID, list[0].EntryID)
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntryDurationAuthoritative() {
	ctx := context.Background()
	req := dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		Date:      "2025-03-10",
		Pending: dto.PendingEdit{
			StartTime:     "9:00 AM",
			DurationHours: "4",
		},
	}

	suite.mockRepo.On("SaveEntry", ctx, mock.Anything, []domain.ChangeRecord(nil)).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(14400), entry.DurationSeconds)
	suite.Require().NotNil(entry.EndAt)
	suite.Equal("1:00 PM", timeclock.FormatClock(*entry.EndAt))
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntryMidnightCrossing() {
	ctx := context.Background()
	req := dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		Date:      "2025-03-10",
		Pending: dto.PendingEdit{
			StartTime: "11:00 PM",
			EndTime:   "1:00 AM",
		},
	}

	suite.mockRepo.On("SaveEntry", ctx, mock.Anything, []domain.ChangeRecord(nil)).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(7200), entry.DurationSeconds)
	suite.Require().NotNil(entry.EndAt)
	// End lands on the next calendar day.
	suite.Equal(11, entry.EndAt.Day())
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntryRequiresEndOrDuration() {
	ctx := context.Background()
	req := dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		Date:      "2025-03-10",
		Pending:   dto.PendingEdit{StartTime: "9:00 AM"},
	}

	_, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingRequiredField)
	var fieldErr *apperrors.FieldError
	suite.Require().True(errors.As(err, &fieldErr))
	suite.Equal(dto.FieldNewEndTime, fieldErr.Field)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntryRejectsInvalidTimeText() {
	ctx := context.Background()
	req := dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		Date:      "2025-03-10",
		Pending: dto.PendingEdit{
			StartTime: "9:61",
			EndTime:   "5:00 PM",
		},
	}

	_, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().Error(err)
	var fieldErr *apperrors.FieldError
	suite.Require().True(errors.As(err, &fieldErr))
	suite.Equal(dto.FieldNewStartTime, fieldErr.Field)
	suite.Equal(timeclock.MsgMinuteRange, fieldErr.Msg)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *TimeEntryServiceTestSuite) TestCreateEntryRejectsInvalidDurationText() {
	ctx := context.Background()
	req := dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		Date:      "2025-03-10",
		Pending: dto.PendingEdit{
			StartTime:     "9:00 AM",
			DurationHours: "abc",
		},
	}

	_, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().Error(err)
	var fieldErr *apperrors.FieldError
	suite.Require().True(errors.As(err, &fieldErr))
	// The message lands next to the duration input, not the end time.
	suite.Equal(dto.FieldNewDuration, fieldErr.Field)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

// --- UpdateEntry ---

func (suite *TimeEntryServiceTestSuite) TestUpdateEntryDurationEditMovesEnd() {
	ctx := context.Background()
	stored := suite.storedEntry()

	suite.mockRepo.On("FindEntryByID", ctx, "entry-1").Return(stored, nil).Once()
	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.DurationSeconds == 14400 &&
			e.EndAt != nil && timeclock.FormatClock(*e.EndAt) == "1:00 PM" &&
			len(e.History) == 2
	}), mock.MatchedBy(func(records []domain.ChangeRecord) bool {
		return len(records) == 2 &&
			records[0].Field == domain.FieldEndTime &&
			records[0].OldValue == "5:00 PM" && records[0].NewValue == "1:00 PM" &&
			records[1].Field == domain.FieldDurationSeconds &&
			records[1].OldValue == "8.00h" && records[1].NewValue == "4.00h"
	})).Return(nil).Once()

	req := dto.UpdateTimeEntryRequest{
		Pending: dto.PendingEdit{DurationHours: "4"},
	}
	updated, err := suite.service.UpdateEntry(ctx, "entry-1", req, "user-2")

	suite.Require().NoError(err)
	suite.Equal(int64(14400), updated.DurationSeconds)
	suite.Equal("user-2", updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntryEndTextInfersPMFromAnchor() {
	ctx := context.Background()
	stored := suite.storedEntry()

	suite.mockRepo.On("FindEntryByID", ctx, "entry-1").Return(stored, nil).Once()
	suite.mockRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	// "100" against a 9:00 AM start resolves to 1:00 PM, not 1:00 AM.
	req := dto.UpdateTimeEntryRequest{
		Pending: dto.PendingEdit{EndTime: "100"},
	}
	updated, err := suite.service.UpdateEntry(ctx, "entry-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.EndAt)
	suite.Equal("1:00 PM", timeclock.FormatClock(*updated.EndAt))
	suite.Equal(int64(14400), updated.DurationSeconds)
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntryNoVisibleChangeWritesNothing() {
	ctx := context.Background()
	stored := suite.storedEntry()

	suite.mockRepo.On("FindEntryByID", ctx, "entry-1").Return(stored, nil).Once()

	// Same note, no time text typed: the stored span stays untouched and
	// the diff is empty.
	note := stored.Note
	req := dto.UpdateTimeEntryRequest{Note: &note}
	updated, err := suite.service.UpdateEntry(ctx, "entry-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(stored.EntryID, updated.EntryID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntryAppendsToExistingHistory() {
	ctx := context.Background()
	stored := suite.storedEntry()
	stored.History = []domain.ChangeRecord{{
		RecordID: "rec-0",
		EntryID:  "entry-1",
		Field:    domain.FieldNote,
		OldValue: "None",
		NewValue: "first note",
	}}
	stored.Note = "first note"

	suite.mockRepo.On("FindEntryByID", ctx, "entry-1").Return(stored, nil).Once()
	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		// Prior records are untouched and in place; new ones follow.
		return len(e.History) == 2 && e.History[0].RecordID == "rec-0"
	}), mock.Anything).Return(nil).Once()

	note := "second note"
	req := dto.UpdateTimeEntryRequest{Note: &note}
	_, err := suite.service.UpdateEntry(ctx, "entry-1", req, "user-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntryInvalidDurationReportsDurationField() {
	ctx := context.Background()
	stored := suite.storedEntry()

	suite.mockRepo.On("FindEntryByID", ctx, "entry-1").Return(stored, nil).Once()

	req := dto.UpdateTimeEntryRequest{
		Pending: dto.PendingEdit{DurationHours: "4h"},
	}
	_, err := suite.service.UpdateEntry(ctx, "entry-1", req, "user-1")

	suite.Require().Error(err)
	var fieldErr *apperrors.FieldError
	suite.Require().True(errors.As(err, &fieldErr))
	suite.Equal(dto.FieldEditDuration, fieldErr.Field)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntryNoteOnlyKeepsStoredSpan() {
	ctx := context.Background()
	stored := suite.storedEntry()
	// An entry without an end time: a note-only edit must not trip the
	// end-or-duration requirement.
	stored.EndAt = nil
	stored.DurationSeconds = 0

	suite.mockRepo.On("FindEntryByID", ctx, "entry-1").Return(stored, nil).Once()
	suite.mockRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.TimeEntry) bool {
		return e.StartAt.Equal(stored.StartAt) && e.EndAt == nil && e.DurationSeconds == 0
	}), mock.MatchedBy(func(records []domain.ChangeRecord) bool {
		return len(records) == 1 && records[0].Field == domain.FieldNote
	})).Return(nil).Once()

	note := "standup prep"
	req := dto.UpdateTimeEntryRequest{Note: &note}
	updated, err := suite.service.UpdateEntry(ctx, "entry-1", req, "user-1")

	suite.Require().NoError(err)
	suite.Nil(updated.EndAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestUpdateEntryNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindEntryByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateEntry(ctx, "missing", dto.UpdateTimeEntryRequest{}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteEntry ---

func (suite *TimeEntryServiceTestSuite) TestDeleteEntryRemovesFromFeed() {
	ctx := context.Background()
	stored := suite.storedEntry()
	suite.feed.ApplySnapshot([]domain.TimeEntry{*stored})

	suite.mockRepo.On("DeleteEntry", ctx, "entry-1").Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, "entry-1", "user-1")

	suite.Require().NoError(err)
	suite.Empty(suite.feed.List())

	// A stale snapshot cannot bring the deleted entry back.
	suite.feed.ApplySnapshot([]domain.TimeEntry{*stored})
	suite.Empty(suite.feed.List())
}

// --- ValidatePending ---

func (suite *TimeEntryServiceTestSuite) TestValidatePending() {
	errs := suite.service.ValidatePending(map[string]string{
		dto.FieldNewStartTime:  "13",
		dto.FieldNewEndTime:    "9:3",
		dto.FieldEditStartTime: "abc",
		dto.FieldEditEndTime:   "",
		"unknownField":         "13",
	})

	suite.Equal(timeclock.MsgHourRange, errs[dto.FieldNewStartTime])
	suite.NotContains(errs, dto.FieldNewEndTime)
	suite.Equal(timeclock.MsgInvalidTime, errs[dto.FieldEditStartTime])
	suite.NotContains(errs, dto.FieldEditEndTime)
	suite.NotContains(errs, "unknownField")
}

// --- ListEntries ---

func (suite *TimeEntryServiceTestSuite) TestListEntriesMapsParams() {
	ctx := context.Background()
	expected := portsrepo.TimeEntryListFilter{
		UserID:   "user-1",
		SortBy:   domain.SortByDuration,
		SortDesc: false,
		Limit:    10,
		Offset:   20,
	}
	suite.mockRepo.On("FindEntries", ctx, expected).Return([]domain.TimeEntry{}, nil).Once()

	_, err := suite.service.ListEntries(ctx, dto.ListTimeEntriesParams{
		UserID:  "user-1",
		SortBy:  "duration",
		SortDir: "asc",
		Limit:   10,
		Offset:  20,
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestListEntriesDecodesPageToken() {
	ctx := context.Background()
	cursorAt := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	token := pagination.EncodeCursor(cursorAt, "entry-9")

	suite.mockRepo.On("FindEntries", ctx, mock.MatchedBy(func(f portsrepo.TimeEntryListFilter) bool {
		return f.AfterStartAt != nil &&
			f.AfterStartAt.Equal(cursorAt) &&
			f.AfterEntryID == "entry-9"
	})).Return([]domain.TimeEntry{}, nil).Once()

	_, err := suite.service.ListEntries(ctx, dto.ListTimeEntriesParams{PageToken: token})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TimeEntryServiceTestSuite) TestListEntriesRejectsMalformedPageToken() {
	_, err := suite.service.ListEntries(context.Background(), dto.ListTimeEntriesParams{
		PageToken: "not-a-cursor",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindEntries")
}

func (suite *TimeEntryServiceTestSuite) TestListEntriesMasksLocallyDeletedEntry() {
	ctx := context.Background()
	stored := suite.storedEntry()
	other := *stored
	other.EntryID = "entry-2"

	suite.mockRepo.On("DeleteEntry", ctx, "entry-1").Return(nil).Once()
	// The store still returns the deleted entry in its next page.
	suite.mockRepo.On("FindEntries", ctx, mock.Anything).
		Return([]domain.TimeEntry{*stored, other}, nil).Once()

	suite.Require().NoError(suite.service.DeleteEntry(ctx, "entry-1", "user-1"))

	listed, err := suite.service.ListEntries(ctx, dto.ListTimeEntriesParams{})

	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal("entry-2", listed[0].EntryID)
}

func (suite *TimeEntryServiceTestSuite) TestListEntriesKeepsUnconfirmedLocalAdd() {
	ctx := context.Background()
	req := dto.CreateTimeEntryRequest{
		ProjectID: "proj-1",
		Date:      "2025-03-10",
		Pending: dto.PendingEdit{
			StartTime: "9:00 AM",
			EndTime:   "5:00 PM",
		},
	}

	suite.mockRepo.On("SaveEntry", ctx, mock.Anything, []domain.ChangeRecord(nil)).Return(nil).Once()
	// The store has not echoed the new entry yet.
	suite.mockRepo.On("FindEntries", ctx, mock.Anything).
		Return([]domain.TimeEntry{}, nil).Once()

	created, err := suite.service.CreateEntry(ctx, req, "user-1")
	suite.Require().NoError(err)

	listed, err := suite.service.ListEntries(ctx, dto.ListTimeEntriesParams{})

	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(created.EntryID, listed[0].EntryID)
}

func TestTimeEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeEntryServiceTestSuite))
}
