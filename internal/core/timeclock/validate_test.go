package timeclock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracknest/timetrack_app/internal/core/timeclock"
)

func TestValidateInputAcceptsPrefixesOfValidInput(t *testing.T) {
	// Every prefix of a valid final string must be accepted as valid-so-far.
	finals := []string{"9:30 PM", "12:05 AM", "0930", "11:45"}
	for _, final := range finals {
		for i := 1; i <= len(final); i++ {
			prefix := final[:i]
			assert.Emptyf(t, timeclock.ValidateInput(prefix),
				"prefix %q of %q should be valid-so-far", prefix, final)
		}
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"9", ""},
		{"09", ""},
		{"12", ""},
		{"930", ""},
		{"0930", ""},
		{"9:30", ""},
		{"9:30 pm", ""},
		{"9 PM", ""},
		{"a", ""},
		{"pm", ""},

		{"13", timeclock.MsgHourRange},
		{"00", timeclock.MsgHourRange},
		{"1300", timeclock.MsgHourRange},
		{"13:00", timeclock.MsgHourRange},
		{"0:30", timeclock.MsgHourRange},
		{"0 PM", timeclock.MsgHourRange},

		{"999", timeclock.MsgMinuteRange},
		{"1275", timeclock.MsgMinuteRange},
		{"9:60", timeclock.MsgMinuteRange},
		{"9:7", timeclock.MsgMinuteRange},

		{"nope", timeclock.MsgInvalidTime},
		{"9;30", timeclock.MsgInvalidTime},
		{"12345", timeclock.MsgInvalidTime},
	}
	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, timeclock.ValidateInput(tt.raw))
		})
	}
}

func TestValidateInputNeverPanicsOnGarbage(t *testing.T) {
	for _, raw := range []string{":::", " : ", "AMPM", "9:30 PM extra", "\t", "½"} {
		assert.NotPanics(t, func() { timeclock.ValidateInput(raw) })
	}
}
