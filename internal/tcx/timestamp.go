package tcx

import "time"

// ParseTime parses a fixed-offset ISO-8601 timestamp such as
// "2025-12-07T08:48:35.000+01:00". The boolean is false on malformed
// input; callers degrade gracefully rather than fail, since a bad
// timestamp is one field among many.
func ParseTime(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
