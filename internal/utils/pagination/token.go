package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeCursor creates a base64 encoded cursor from an entry's start time
// and id. Start time orders the page, the id breaks ties between entries
// starting at the same instant.
func EncodeCursor(startAt time.Time, entryID string) string {
	cursorStr := fmt.Sprintf("%s|%s", startAt.Format(timeFormat), entryID)
	return base64.StdEncoding.EncodeToString([]byte(cursorStr))
}

// DecodeCursor parses the base64 encoded cursor back into start time and
// entry id.
func DecodeCursor(cursor string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination cursor format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination cursor format (split)")
	}

	startAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination cursor format (start time parse): %w", err)
	}
	return startAt, parts[1], nil
}
