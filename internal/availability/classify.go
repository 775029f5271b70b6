package availability

import (
	"time"
)

// IsBookedAt reports whether the resource is busy at the given instant.
// Intervals are half-open, so an instant equal to a block's end is free.
func IsBookedAt(merged []Interval, t time.Time) bool {
	for _, iv := range merged {
		if iv.Contains(t) {
			return true
		}
	}
	return false
}

// NextRentable returns the earliest instant at or after from at which the
// resource can genuinely be handed out: it is outside every busy interval,
// and the free run until the next busy interval (if there is one) is at
// least minGap. Gaps shorter than minGap are skipped past the blocking
// booking. A result equal to from means the resource is rentable right now.
//
// merged must be in canonical merged form (sorted, strictly gapped).
func NextRentable(merged []Interval, from time.Time, minGap time.Duration) time.Time {
	candidate := from

	for _, iv := range merged {
		// Entirely behind the candidate; half-open end means an interval
		// ending exactly at the candidate does not block it.
		if !iv.End.After(candidate) {
			continue
		}
		if !iv.Start.After(candidate) {
			// Candidate sits inside this block; resume at its end.
			candidate = iv.End
			continue
		}
		if iv.Start.Sub(candidate) >= minGap {
			return candidate
		}
		// Usable-gap policy: too short to rent, skip past this booking too.
		candidate = iv.End
	}

	return candidate
}
