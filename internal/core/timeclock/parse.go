package timeclock

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tracknest/timetrack_app/internal/apperrors"
)

var (
	// Optional AM/PM suffix: "AM", "PM", "A", "P", case folded by the
	// caller, with at most one space before it.
	reSuffix = regexp.MustCompile(`^(.*?) ?([AP]M?)$`)

	reStructured   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	rePartialColon = regexp.MustCompile(`^\d{1,2}:\d?$`)
	reDigits       = regexp.MustCompile(`^\d+$`)
)

// Parse converts free-form, possibly incomplete 12-hour time text into a
// ClockTime. anchor is the already-known paired time (e.g. the start time
// when parsing an end time) and drives AM/PM inference when the text
// carries no suffix.
//
// It returns apperrors.ErrIncompleteInput while the text is still too short
// to imply a time, and apperrors.ErrInvalidTimeFormat for text that can
// never become valid (hour outside 1-12, minutes above 59, stray
// characters). Hours are never auto-wrapped.
func Parse(raw string, anchor *ClockTime) (ClockTime, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ClockTime{}, apperrors.ErrIncompleteInput
	}

	body := s
	var suffix string
	if m := reSuffix.FindStringSubmatch(s); m != nil {
		body, suffix = m[1], m[2]
	}
	if body == "" {
		// A bare meridiem letter is something the user is mid-typing.
		return ClockTime{}, apperrors.ErrIncompleteInput
	}

	var hour12, minute int
	switch {
	case strings.Contains(body, ":"):
		// Colon input is already structured; never re-tokenized digit by digit.
		m := reStructured.FindStringSubmatch(body)
		if m == nil {
			if rePartialColon.MatchString(body) {
				return ClockTime{}, apperrors.ErrIncompleteInput
			}
			return ClockTime{}, apperrors.ErrInvalidTimeFormat
		}
		hour12, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])

	case reDigits.MatchString(body):
		// Bare digits: "9" / "930" / "0930".
		if suffix == "" && len(body) < 3 {
			return ClockTime{}, apperrors.ErrIncompleteInput
		}
		switch len(body) {
		case 1, 2:
			hour12, _ = strconv.Atoi(body)
		case 3:
			hour12, _ = strconv.Atoi(body[:1])
			minute, _ = strconv.Atoi(body[1:])
		case 4:
			hour12, _ = strconv.Atoi(body[:2])
			minute, _ = strconv.Atoi(body[2:])
		default:
			return ClockTime{}, apperrors.ErrInvalidTimeFormat
		}

	default:
		return ClockTime{}, apperrors.ErrInvalidTimeFormat
	}

	if hour12 < 1 || hour12 > 12 {
		return ClockTime{}, apperrors.ErrInvalidTimeFormat
	}
	if minute > 59 {
		return ClockTime{}, apperrors.ErrInvalidTimeFormat
	}

	pm := false
	switch {
	case strings.HasPrefix(suffix, "P"):
		pm = true
	case strings.HasPrefix(suffix, "A"):
		pm = false
	default:
		pm = inferPM(hour12, anchor)
	}

	hour24 := hour12 % 12
	if pm {
		hour24 += 12
	}
	return ClockTime{Hour: hour24, Minute: minute}, nil
}

// inferPM guesses the meridiem of a suffix-less candidate hour from the
// paired anchor time. With no anchor the guess is AM. A PM anchor pulls the
// candidate into the afternoon. For a morning anchor the candidate stays in
// the same morning block only while it lies within the anchor's hour
// through anchor's hour + 2; anything else is read as the session moving
// into the afternoon.
func inferPM(hour12 int, anchor *ClockTime) bool {
	if anchor == nil {
		return false
	}
	if anchor.IsPM() {
		return true
	}
	a := anchor.Hour12()
	if hour12 >= a && hour12 <= a+2 {
		return false
	}
	return true
}
