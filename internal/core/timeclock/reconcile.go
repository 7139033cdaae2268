package timeclock

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tracknest/timetrack_app/internal/apperrors"
)

// Span is a fully reconciled {start, end, duration} triple. StartAt and
// EndAt are absolute instants in the entry's local frame; DurationSeconds
// always equals EndAt - StartAt.
type Span struct {
	StartAt         time.Time
	EndAt           time.Time
	DurationSeconds int64
}

// Reconcile computes the member of {end, duration} the caller did not
// supply, anchored to the given civil date.
//
// When durationHours is non-nil, duration is authoritative: the end time is
// derived from it. Otherwise end must be non-nil and duration is derived
// from the start/end pair; a naive difference of zero or less is read as
// the end time crossing midnight into the next calendar day, the only
// rollover the engine ever assumes. It returns
// apperrors.ErrMissingRequiredField when neither end nor duration is given,
// and apperrors.ErrInvalidRange when the supplied values are contradictory
// (non-positive duration even after the midnight adjustment).
func Reconcile(date time.Time, start ClockTime, end *ClockTime, durationHours *decimal.Decimal) (Span, error) {
	startAt := start.On(date)

	if durationHours != nil {
		seconds := durationHours.Mul(secondsPerHour).Round(0).IntPart()
		if seconds <= 0 {
			return Span{}, apperrors.ErrInvalidRange
		}
		return Span{
			StartAt:         startAt,
			EndAt:           startAt.Add(time.Duration(seconds) * time.Second),
			DurationSeconds: seconds,
		}, nil
	}

	if end == nil {
		return Span{}, apperrors.ErrMissingRequiredField
	}

	endAt := end.On(date)
	diff := endAt.Sub(startAt)
	if diff <= 0 {
		endAt = endAt.Add(24 * time.Hour)
		diff = endAt.Sub(startAt)
	}
	if diff <= 0 {
		return Span{}, apperrors.ErrInvalidRange
	}
	return Span{
		StartAt:         startAt,
		EndAt:           endAt,
		DurationSeconds: int64(diff / time.Second),
	}, nil
}
