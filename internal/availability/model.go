package availability

import (
	"time"
)

// TileStatus is the classification of a single day on the dashboard grid.
type TileStatus string

const (
	StatusAvailable TileStatus = "available"
	StatusBooked    TileStatus = "booked"
	StatusHeadsUp   TileStatus = "heads_up"
)

// Interval is a half-open busy range [Start, End) during which a resource
// cannot be handed out.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval (Start <= t < End).
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// BookingSpan is one reservation after timestamp normalization.
// Pickup and Return are the human-facing, unbuffered instants; Start and End
// are the buffer-padded busy interval derived from them. Buffers are applied
// here and nowhere upstream, so a span is the single source of both the
// displayed times and the blocking times.
type BookingSpan struct {
	Pickup time.Time
	Return time.Time
	Start  time.Time
	End    time.Time
}

// Interval returns the buffered busy interval of the span.
func (s BookingSpan) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// Diagnostic records a reservation that was dropped during span building.
// Dropping is per-reservation: the rest of the snapshot is unaffected.
type Diagnostic struct {
	ResourceID string
	Field      string
	Raw        string
	Err        error
}

// DayWindow is one local civil day, midnight to midnight, half-open.
// From and Till are absolute instants; Date and Label are the local
// calendar date and short weekday name used on the grid.
type DayWindow struct {
	Date  string
	Label string
	From  time.Time
	Till  time.Time
}

// DayTile is the classification of one day window for one resource.
// Time fields are local clock times ("15:04") and are only set for the
// statuses that carry them.
type DayTile struct {
	Date        string
	Label       string
	Status      TileStatus
	BookedFrom  string
	BookedUntil string
	BackTime    string
	FreeTime    string
}

// Policy holds the operational parameters the engine computes under.
//
// OffsetMinutes is the fixed UTC offset of the operating zone. The fixed
// offset is only valid for zones without daylight-saving transitions; this
// is a precondition of the whole engine, enforced at configuration time.
type Policy struct {
	OffsetMinutes   int
	MinGap          time.Duration
	EarlyCutoffHour int
	HorizonDays     int
}

// Report is the availability picture for a single resource: whether it is
// booked right now, the next instant it can genuinely be rented, and the
// day-by-day grid over the display horizon.
type Report struct {
	ResourceID    string
	ResourceName  string
	BookedNow     bool
	AvailableNow  bool
	NextAvailable time.Time
	Days          []DayTile
}
