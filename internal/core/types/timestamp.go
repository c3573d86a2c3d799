package types

import (
	"time"

	"driveledger/internal/core/apperror"
)

// Timestamp layouts accepted from archived rows, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601-ish timestamp string.
// Returns a TIMESTAMP_PARSE error when no layout matches.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, apperror.NewTimestampParse(s, lastErr)
}

// LenientTimestamp parses like ParseTimestamp but never fails: a malformed
// value yields the current UTC time plus the parse error so callers can log
// the substitution. Historical records mis-stamped this way land in the
// current month's bucket.
func LenientTimestamp(s string) (time.Time, error) {
	t, err := ParseTimestamp(s)
	if err != nil {
		return time.Now().UTC(), err
	}
	return t, nil
}

// FormatTimestamp renders a timestamp the way archived rows store it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
