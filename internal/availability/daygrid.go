package availability

import (
	"time"
)

// DayWindows builds the display horizon: horizonDays consecutive local civil
// days starting with the day containing now, each a half-open window in
// absolute time.
func DayWindows(now time.Time, horizonDays, offsetMinutes int) []DayWindow {
	offset := time.Duration(offsetMinutes) * time.Minute
	local := now.UTC().Add(offset)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	windows := make([]DayWindow, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		from := midnight.AddDate(0, 0, i)
		till := from.AddDate(0, 0, 1)
		windows = append(windows, DayWindow{
			Date:  from.Format("2006-01-02"),
			Label: from.Format("Mon"),
			From:  from.Add(-offset),
			Till:  till.Add(-offset),
		})
	}
	return windows
}

// ClassifyDay decides the grid tile for one resource on one day.
//
// The decision tree, in order:
//  1. No busy interval overlaps the day: available.
//  2. Some reservation is picked up during the day: booked, showing the
//     earliest such reservation's unbuffered pickup and return times. The
//     buffered intervals drive the classification, the displayed times stay
//     human-facing.
//  3. A carry-over block (started before the day) ends within it: available
//     when the unbuffered return lands before the early cutoff hour, so an
//     overnight return completing before opening does not block the day;
//     otherwise a heads-up with the return time and, when the trailing
//     buffer moves it, the instant the resource is truly rentable again.
//  4. The busy block covers the rest of the day: booked, no times.
func ClassifyDay(day DayWindow, merged []Interval, spans []BookingSpan, earlyCutoffHour, offsetMinutes int) DayTile {
	tile := DayTile{Date: day.Date, Label: day.Label, Status: StatusAvailable}

	if !anyOverlaps(merged, day) {
		return tile
	}

	// A pickup during the day books the day outright.
	var first *BookingSpan
	for i := range spans {
		s := &spans[i]
		if !s.Pickup.Before(day.From) && s.Pickup.Before(day.Till) {
			if first == nil || s.Pickup.Before(first.Pickup) {
				first = s
			}
		}
	}
	if first != nil {
		tile.Status = StatusBooked
		tile.BookedFrom = localClock(first.Pickup, offsetMinutes)
		tile.BookedUntil = localClock(first.Return, offsetMinutes)
		return tile
	}

	// Carry-over: a block that started before the day and ends inside it.
	// The earliest-ending one decides the tile.
	var carry *Interval
	for i := range merged {
		iv := &merged[i]
		if !iv.Start.Before(day.From) || !iv.End.After(day.From) || iv.End.After(day.Till) {
			continue
		}
		if carry == nil || iv.End.Before(carry.End) {
			carry = iv
		}
	}
	if carry != nil {
		back := carryReturn(*carry, spans)
		if localHour(back, offsetMinutes) < earlyCutoffHour {
			return tile
		}
		tile.Status = StatusHeadsUp
		tile.BackTime = localClock(back, offsetMinutes)
		if free := localClock(carry.End, offsetMinutes); free != tile.BackTime {
			tile.FreeTime = free
		}
		return tile
	}

	tile.Status = StatusBooked
	return tile
}

func anyOverlaps(merged []Interval, day DayWindow) bool {
	for _, iv := range merged {
		if iv.Start.Before(day.Till) && iv.End.After(day.From) {
			return true
		}
	}
	return false
}

// carryReturn recovers the unbuffered return instant behind the end of a
// merged carry-over block: the latest return among the spans folded into it.
func carryReturn(block Interval, spans []BookingSpan) time.Time {
	var back time.Time
	for _, s := range spans {
		if s.End.After(block.End) || !s.End.After(block.Start) {
			continue
		}
		if s.Return.After(back) {
			back = s.Return
		}
	}
	if back.IsZero() {
		back = block.End
	}
	return back
}

func localClock(t time.Time, offsetMinutes int) string {
	return t.UTC().Add(time.Duration(offsetMinutes) * time.Minute).Format("15:04")
}

func localHour(t time.Time, offsetMinutes int) int {
	return t.UTC().Add(time.Duration(offsetMinutes) * time.Minute).Hour()
}
