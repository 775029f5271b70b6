package availability

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ParseError reports a timestamp that could not be normalized.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Raw, e.Reason)
}

// Accepted shape: YYYY-MM-DD[ T]HH:MM[:SS][.fff](Z|±HH:MM|±HHMM)?
var timestampPattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2})[ T](\d{2}:\d{2})(:\d{2})?(?:\.(\d{1,3}))?(Z|[+-]\d{2}:?\d{2})?$`)

// ParseTimestamp converts a booking-system timestamp into an absolute UTC instant.
//
// Timestamps that carry explicit zone information (a trailing Z or a numeric
// offset) are parsed directly. Naive timestamps are read as civil time in the
// operating zone given by offsetMinutes: the digits are parsed as if they were
// UTC and the offset is then subtracted. A "+00:00" suffix is an explicit
// offset, never disguised local time.
func ParseTimestamp(ts string, offsetMinutes int) (time.Time, error) {
	m := timestampPattern.FindStringSubmatch(ts)
	if m == nil {
		return time.Time{}, &ParseError{Raw: ts, Reason: "unrecognized format"}
	}

	date, clock, secs, frac, zone := m[1], m[2], m[3], m[4], m[5]
	if secs == "" {
		secs = ":00"
	}
	base := date + "T" + clock + secs

	var t time.Time
	var err error
	switch {
	case zone == "":
		t, err = time.Parse("2006-01-02T15:04:05", base)
		if err == nil {
			// Civil time in the operating zone; shift back to UTC.
			t = t.Add(-time.Duration(offsetMinutes) * time.Minute)
		}
	case zone == "Z":
		t, err = time.Parse(time.RFC3339, base+"Z")
	default:
		if len(zone) == 5 {
			// ±HHMM -> ±HH:MM
			zone = zone[:3] + ":" + zone[3:]
		}
		t, err = time.Parse(time.RFC3339, base+zone)
	}
	if err != nil {
		return time.Time{}, &ParseError{Raw: ts, Reason: "out-of-range date or time"}
	}

	if frac != "" {
		for len(frac) < 3 {
			frac += "0"
		}
		ms, _ := strconv.Atoi(frac)
		t = t.Add(time.Duration(ms) * time.Millisecond)
	}

	return t.UTC(), nil
}
