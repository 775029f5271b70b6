package availability

import (
	"errors"
	"sort"
	"time"

	"github.com/fleetyard/availability-backend/internal/reservation"
)

var errReturnNotAfterPickup = errors.New("return time is not after pickup time")

// BuildSpans turns raw reservations into buffer-padded booking spans for one
// resource. A reservation with a malformed pickup or return timestamp is
// dropped on its own and reported as a diagnostic; every other reservation in
// the snapshot still produces a span.
func BuildSpans(resourceID string, bufferBefore, bufferAfter time.Duration, reservations []reservation.RawReservation, offsetMinutes int) ([]BookingSpan, []Diagnostic) {
	spans := make([]BookingSpan, 0, len(reservations))
	var diags []Diagnostic

	for _, r := range reservations {
		pickup, err := ParseTimestamp(r.PickupTime, offsetMinutes)
		if err != nil {
			diags = append(diags, Diagnostic{ResourceID: resourceID, Field: "pickup_time", Raw: r.PickupTime, Err: err})
			continue
		}
		ret, err := ParseTimestamp(r.ReturnTime, offsetMinutes)
		if err != nil {
			diags = append(diags, Diagnostic{ResourceID: resourceID, Field: "return_time", Raw: r.ReturnTime, Err: err})
			continue
		}
		if !ret.After(pickup) {
			diags = append(diags, Diagnostic{ResourceID: resourceID, Field: "return_time", Raw: r.ReturnTime, Err: errReturnNotAfterPickup})
			continue
		}

		spans = append(spans, BookingSpan{
			Pickup: pickup,
			Return: ret,
			Start:  pickup.Add(-bufferBefore),
			End:    ret.Add(bufferAfter),
		})
	}

	return spans, diags
}

// Intervals extracts the buffered busy intervals from a span list.
func Intervals(spans []BookingSpan) []Interval {
	intervals := make([]Interval, len(spans))
	for i, s := range spans {
		intervals[i] = s.Interval()
	}
	return intervals
}

// Merge folds a list of busy intervals into a canonical form: sorted
// ascending by start, with a strict gap between consecutive intervals.
// Touching intervals (next starting exactly where the previous ends) are
// merged into one block, so exactly-adjacent bookings count as continuously
// busy. The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if next.Start.After(current.End) {
			merged = append(merged, current)
			current = next
			continue
		}
		if next.End.After(current.End) {
			current.End = next.End
		}
	}

	return append(merged, current)
}
