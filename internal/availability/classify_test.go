package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsBookedAt(t *testing.T) {
	merged := []Interval{
		iv(at(9, 0), at(11, 0)),
		iv(at(14, 0), at(16, 0)),
	}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"before everything", at(8, 0), false},
		{"interval start is inclusive", at(9, 0), true},
		{"inside first block", at(10, 30), true},
		{"interval end is exclusive", at(11, 0), false},
		{"in the gap", at(12, 0), false},
		{"inside second block", at(15, 59), true},
		{"after everything", at(16, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsBookedAt(merged, tt.t))
		})
	}
}

func TestNextRentable(t *testing.T) {
	tests := []struct {
		name   string
		merged []Interval
		from   time.Time
		minGap time.Duration
		want   time.Time
	}{
		{
			name:   "no bookings means available now",
			merged: nil,
			from:   at(10, 0),
			minGap: 4 * time.Hour,
			want:   at(10, 0),
		},
		{
			name:   "free with ample room before next booking",
			merged: []Interval{iv(at(18, 0), at(20, 0))},
			from:   at(10, 0),
			minGap: 4 * time.Hour,
			want:   at(10, 0),
		},
		{
			name:   "inside a booking resumes at its end",
			merged: []Interval{iv(at(9, 0), at(13, 15))},
			from:   at(10, 0),
			minGap: 4 * time.Hour,
			want:   at(13, 15),
		},
		{
			name: "short gap is skipped past the next booking",
			merged: []Interval{
				iv(at(9, 0), at(13, 0)),
				iv(at(14, 0), at(18, 0)),
			},
			from:   at(10, 0),
			minGap: 4 * time.Hour,
			want:   at(18, 0),
		},
		{
			name: "gap of exactly minGap is rentable",
			merged: []Interval{
				iv(at(9, 0), at(13, 0)),
				iv(at(17, 0), at(18, 0)),
			},
			from:   at(10, 0),
			minGap: 4 * time.Hour,
			want:   at(13, 0),
		},
		{
			name: "several short gaps in a row",
			merged: []Interval{
				iv(at(8, 0), at(9, 0)),
				iv(at(10, 0), at(11, 0)),
				iv(at(12, 0), at(13, 0)),
			},
			from:   at(8, 30),
			minGap: 2 * time.Hour,
			want:   at(13, 0),
		},
		{
			name:   "from exactly at a block end is free",
			merged: []Interval{iv(at(9, 0), at(11, 0))},
			from:   at(11, 0),
			minGap: time.Hour,
			want:   at(11, 0),
		},
		{
			name:   "from exactly at a block start is busy",
			merged: []Interval{iv(at(9, 0), at(11, 0))},
			from:   at(9, 0),
			minGap: time.Hour,
			want:   at(11, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextRentable(tt.merged, tt.from, tt.minGap)
			require.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

// The gap guarantee: the returned instant is never inside a busy interval,
// and the run of free time until the next block is at least minGap.
func TestNextRentableGapGuarantee(t *testing.T) {
	merged := Merge([]Interval{
		iv(at(8, 0), at(9, 0)),
		iv(at(10, 0), at(11, 0)),
		iv(at(11, 30), at(13, 0)),
		iv(at(16, 0), at(20, 0)),
	})
	minGap := 90 * time.Minute

	for probe := at(7, 0); probe.Before(at(21, 0)); probe = probe.Add(7 * time.Minute) {
		got := NextRentable(merged, probe, minGap)
		require.False(t, IsBookedAt(merged, got), "result %v is inside a busy interval", got)
		require.False(t, got.Before(probe))

		for _, block := range merged {
			if block.Start.After(got) {
				require.GreaterOrEqual(t, block.Start.Sub(got), minGap,
					"gap from %v to next block at %v is under minGap", got, block.Start)
				break
			}
		}
	}
}

// Spec walkthrough: a 09:00-13:00 reservation with a 15 minute return buffer,
// observed at 10:00 under a 4h minimum gap.
func TestNextRentableAfterMorningBooking(t *testing.T) {
	merged := []Interval{iv(at(9, 0), at(13, 15))}
	now := at(10, 0)

	require.True(t, IsBookedAt(merged, now))
	got := NextRentable(merged, now, 4*time.Hour)
	require.True(t, got.Equal(at(13, 15)), "got %v", got)
}
