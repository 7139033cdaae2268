package timeclock

import (
	"regexp"
	"strconv"
	"strings"
)

// Inline messages surfaced next to a time field while the user types.
const (
	MsgInvalidTime = "Enter a time like 9:30 AM"
	MsgHourRange   = "Hour must be between 1 and 12"
	MsgMinuteRange = "Minutes must be between 0 and 59"
)

var (
	reValDigitsOnly   = regexp.MustCompile(`^\d{1,4}$`)
	reValDigitsSuffix = regexp.MustCompile(`^(\d{1,4}) ?([AP]M?)$`)
	reValColon        = regexp.MustCompile(`^(\d{1,2}):(\d{0,2})( ?[AP]M?)?$`)
	reValBareSuffix   = regexp.MustCompile(`^[AP]M?$`)
)

// ValidateInput checks raw keystroke-level time text and returns an empty
// string when the text is acceptable so far, or an inline error message.
// It is deliberately permissive: every prefix of a valid final string is
// accepted, and final structural validation is deferred to Parse at commit
// time. It never panics and has no state.
func ValidateInput(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	switch {
	case reValBareSuffix.MatchString(s):
		return ""

	case reValDigitsOnly.MatchString(s):
		return checkDigitRun(s, false)

	case reValDigitsSuffix.MatchString(s):
		m := reValDigitsSuffix.FindStringSubmatch(s)
		return checkDigitRun(m[1], true)

	case reValColon.MatchString(s):
		m := reValColon.FindStringSubmatch(s)
		hour, _ := strconv.Atoi(m[1])
		if hour < 1 || hour > 12 {
			return MsgHourRange
		}
		switch minutes := m[2]; len(minutes) {
		case 0:
			return ""
		case 1:
			// Only the tens digit is typed; 6-9 can never become 0-59.
			if minutes[0] > '5' {
				return MsgMinuteRange
			}
			return ""
		default:
			if mm, _ := strconv.Atoi(minutes); mm > 59 {
				return MsgMinuteRange
			}
			return ""
		}

	default:
		return MsgInvalidTime
	}
}

// checkDigitRun validates a bare digit sequence. final reports whether an
// AM/PM suffix followed the digits, which rules out further typing.
func checkDigitRun(d string, final bool) string {
	switch len(d) {
	case 1:
		if final && d == "0" {
			return MsgHourRange
		}
		return ""
	case 2:
		n, _ := strconv.Atoi(d)
		if n >= 1 && n <= 12 {
			return ""
		}
		return MsgHourRange
	case 3:
		// Either H:MM already, or the prefix of an HH:MM still being typed.
		if d[0] != '0' {
			if mm, _ := strconv.Atoi(d[1:]); mm <= 59 {
				return ""
			}
		}
		if !final {
			if hh, _ := strconv.Atoi(d[:2]); hh >= 1 && hh <= 12 && d[2] <= '5' {
				return ""
			}
		}
		if d[0] == '0' {
			return MsgHourRange
		}
		return MsgMinuteRange
	default:
		hh, _ := strconv.Atoi(d[:2])
		if hh < 1 || hh > 12 {
			return MsgHourRange
		}
		if mm, _ := strconv.Atoi(d[2:]); mm > 59 {
			return MsgMinuteRange
		}
		return ""
	}
}
