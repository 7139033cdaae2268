package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	startAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	entryID := "entry-123"

	cursor := EncodeCursor(startAt, entryID)
	assert.NotEmpty(t, cursor, "Cursor should not be empty")

	decodedStartAt, decodedID, err := DecodeCursor(cursor)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, startAt, decodedStartAt, "Start time should match after decode")
	assert.Equal(t, entryID, decodedID, "Entry id should match after decode")

	// Nanosecond precision survives the round trip.
	now := time.Now().UTC()
	nowCursor := EncodeCursor(now, "x")
	decodedNow, _, err := DecodeCursor(nowCursor)
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeCursorError(t *testing.T) {
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Base64 encoded date without separator.
	_, _, err = DecodeCursor("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err, "Should return an error for invalid cursor format")
	assert.Contains(t, err.Error(), "split")

	// Base64 encoded "notadate|entry-1".
	_, _, err = DecodeCursor("bm90YWRhdGV8ZW50cnktMQ==")
	assert.Error(t, err, "Should return an error for invalid start time")
	assert.Contains(t, err.Error(), "start time parse")
}
