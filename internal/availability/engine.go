package availability

import (
	"time"

	"github.com/fleetyard/availability-backend/internal/reservation"
)

// ComputeReport derives the full availability picture for one resource from a
// fresh reservation snapshot. It is a pure function of its inputs: no I/O, no
// shared state, deterministic for a given now.
func ComputeReport(resourceID, resourceName string, bufferBefore, bufferAfter time.Duration, reservations []reservation.RawReservation, now time.Time, p Policy) (*Report, []Diagnostic) {
	spans, diags := BuildSpans(resourceID, bufferBefore, bufferAfter, reservations, p.OffsetMinutes)
	merged := Merge(Intervals(spans))

	next := NextRentable(merged, now, p.MinGap)

	report := &Report{
		ResourceID:    resourceID,
		ResourceName:  resourceName,
		BookedNow:     IsBookedAt(merged, now),
		AvailableNow:  next.Equal(now),
		NextAvailable: next,
	}

	for _, day := range DayWindows(now, p.HorizonDays, p.OffsetMinutes) {
		report.Days = append(report.Days, ClassifyDay(day, merged, spans, p.EarlyCutoffHour, p.OffsetMinutes))
	}

	return report, diags
}
