package timeclock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracknest/timetrack_app/internal/apperrors"
	"github.com/tracknest/timetrack_app/internal/core/timeclock"
)

func clock(h, m int) *timeclock.ClockTime {
	return &timeclock.ClockTime{Hour: h, Minute: m}
}

func TestParseExplicitSuffix(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"full form", "9:30 AM", "9:30 AM"},
		{"lowercase", "9:30 pm", "9:30 PM"},
		{"no space before suffix", "9:30PM", "9:30 PM"},
		{"single letter suffix", "9:30 P", "9:30 PM"},
		{"bare digits with suffix", "930A", "9:30 AM"},
		{"hour only with suffix", "9 PM", "9:00 PM"},
		{"two digit hour with suffix", "11 pm", "11:00 PM"},
		{"noon", "12:00 PM", "12:00 PM"},
		{"midnight", "12:00 AM", "12:00 AM"},
		{"leading zero", "0930 PM", "9:30 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeclock.Parse(tt.raw, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Display())
		})
	}
}

func TestParseInfersAMWithoutAnchor(t *testing.T) {
	got, err := timeclock.Parse("900", nil)
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", got.Display())
}

func TestParseAnchorInference(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		anchor *timeclock.ClockTime
		want   string
	}{
		// Morning anchor: candidates within anchor hour .. anchor hour+2
		// stay in the same morning block; anything else moves to PM.
		{"within window", "900", clock(8, 0), "9:00 AM"},
		{"window upper bound", "1000", clock(8, 0), "10:00 AM"},
		{"outside window", "200", clock(8, 0), "2:00 PM"},
		{"before anchor hour", "700", clock(8, 0), "7:00 PM"},
		{"same hour as anchor", "830", clock(8, 0), "8:30 AM"},
		// PM anchor always pulls the candidate into the afternoon.
		{"pm anchor", "500", clock(13, 0), "5:00 PM"},
		{"noon anchor", "100", clock(12, 0), "1:00 PM"},
		// Explicit suffix wins over the anchor.
		{"suffix beats anchor", "200 AM", clock(8, 0), "2:00 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeclock.Parse(tt.raw, tt.anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Display())
		})
	}
}

func TestParseIncomplete(t *testing.T) {
	for _, raw := range []string{"", " ", "9", "93", "9:", "9:3", "A", "P", "PM"} {
		t.Run("raw="+raw, func(t *testing.T) {
			_, err := timeclock.Parse(raw, nil)
			assert.ErrorIs(t, err, apperrors.ErrIncompleteInput)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, raw := range []string{"1300", "13:00", "0:30", "930 XM", "9:60", "960 PM", "12345", "one"} {
		t.Run("raw="+raw, func(t *testing.T) {
			_, err := timeclock.Parse(raw, nil)
			assert.ErrorIs(t, err, apperrors.ErrInvalidTimeFormat)
		})
	}
}

func TestParse24HourArithmetic(t *testing.T) {
	got, err := timeclock.Parse("5:00 PM", nil)
	require.NoError(t, err)
	assert.Equal(t, 17, got.Hour)
	assert.Equal(t, 0, got.Minute)

	got, err = timeclock.Parse("12:15 AM", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour)
	assert.Equal(t, 15, got.Minute)
}
