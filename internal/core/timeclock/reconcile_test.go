package timeclock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracknest/timetrack_app/internal/apperrors"
	"github.com/tracknest/timetrack_app/internal/core/timeclock"
)

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestReconcileEndAuthoritative(t *testing.T) {
	start := timeclock.ClockTime{Hour: 9, Minute: 0}
	end := timeclock.ClockTime{Hour: 17, Minute: 0}

	span, err := timeclock.Reconcile(testDate, start, &end, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(28800), span.DurationSeconds)
	assert.Equal(t, testDate.Add(9*time.Hour), span.StartAt)
	assert.Equal(t, testDate.Add(17*time.Hour), span.EndAt)
}

func TestReconcileMidnightCrossing(t *testing.T) {
	start := timeclock.ClockTime{Hour: 23, Minute: 0} // 11:00 PM
	end := timeclock.ClockTime{Hour: 1, Minute: 0}    // 1:00 AM next day

	span, err := timeclock.Reconcile(testDate, start, &end, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7200), span.DurationSeconds)
	assert.Equal(t, testDate.AddDate(0, 0, 1).Add(1*time.Hour), span.EndAt)
}

func TestReconcileDurationAuthoritative(t *testing.T) {
	start := timeclock.ClockTime{Hour: 9, Minute: 0}
	hours := decimal.RequireFromString("4")

	span, err := timeclock.Reconcile(testDate, start, nil, &hours)
	require.NoError(t, err)
	assert.Equal(t, int64(14400), span.DurationSeconds)
	assert.Equal(t, "1:00 PM", timeclock.FormatClock(span.EndAt))
}

func TestReconcileFractionalDuration(t *testing.T) {
	start := timeclock.ClockTime{Hour: 8, Minute: 30}
	hours := decimal.RequireFromString("1.25")

	span, err := timeclock.Reconcile(testDate, start, nil, &hours)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), span.DurationSeconds)
	assert.Equal(t, "9:45 AM", timeclock.FormatClock(span.EndAt))
}

// deriving end from the computed duration must land back on the same end time.
func TestReconcileRoundTrip(t *testing.T) {
	starts := []timeclock.ClockTime{{Hour: 6, Minute: 15}, {Hour: 9, Minute: 0}, {Hour: 13, Minute: 45}}
	ends := []timeclock.ClockTime{{Hour: 10, Minute: 30}, {Hour: 17, Minute: 0}, {Hour: 22, Minute: 5}}

	for _, start := range starts {
		for _, end := range ends {
			span, err := timeclock.Reconcile(testDate, start, &end, nil)
			require.NoError(t, err)
			rederived := span.StartAt.Add(time.Duration(span.DurationSeconds) * time.Second)
			assert.True(t, rederived.Equal(span.EndAt),
				"start %s end %s: re-derived end %s", start.Display(), end.Display(), rederived)
		}
	}
}

func TestReconcileContradictoryDuration(t *testing.T) {
	start := timeclock.ClockTime{Hour: 9, Minute: 0}

	zero := decimal.Zero
	_, err := timeclock.Reconcile(testDate, start, nil, &zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)

	negative := decimal.RequireFromString("-2")
	_, err = timeclock.Reconcile(testDate, start, nil, &negative)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestReconcileRequiresEndOrDuration(t *testing.T) {
	start := timeclock.ClockTime{Hour: 9, Minute: 0}
	_, err := timeclock.Reconcile(testDate, start, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrMissingRequiredField)
}

func TestFormatDurationHours(t *testing.T) {
	assert.Equal(t, "8.00h", timeclock.FormatDurationHours(28800))
	assert.Equal(t, "0.50h", timeclock.FormatDurationHours(1800))
	assert.Equal(t, "1.25h", timeclock.FormatDurationHours(4500))
	assert.Equal(t, "0.00h", timeclock.FormatDurationHours(0))
}
