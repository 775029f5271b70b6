package http

import (
	"time"

	"github.com/fleetyard/availability-backend/internal/availability"
)

// DayTileResponse is one day on the dashboard grid. The optional time fields
// are local clock times and only present for the statuses that carry them.
type DayTileResponse struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	Status      string `json:"status"`
	BookedFrom  string `json:"booked_from,omitempty"`
	BookedUntil string `json:"booked_until,omitempty"`
	BackTime    string `json:"back_time,omitempty"`
	FreeTime    string `json:"free_time,omitempty"`
}

// ResourceAvailabilityResponse is the per-resource availability picture.
// NextAvailable is omitted when the resource is available right now.
type ResourceAvailabilityResponse struct {
	ResourceID    string            `json:"resource_id"`
	ResourceName  string            `json:"resource_name"`
	BookedNow     bool              `json:"booked_now"`
	AvailableNow  bool              `json:"available_now"`
	NextAvailable *time.Time        `json:"next_available,omitempty"`
	Days          []DayTileResponse `json:"days"`
}

func NewResourceAvailabilityResponse(r *availability.Report) ResourceAvailabilityResponse {
	resp := ResourceAvailabilityResponse{
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		BookedNow:    r.BookedNow,
		AvailableNow: r.AvailableNow,
		Days:         make([]DayTileResponse, len(r.Days)),
	}
	if !r.AvailableNow {
		next := r.NextAvailable
		resp.NextAvailable = &next
	}
	for i, d := range r.Days {
		resp.Days[i] = DayTileResponse{
			Date:        d.Date,
			Label:       d.Label,
			Status:      string(d.Status),
			BookedFrom:  d.BookedFrom,
			BookedUntil: d.BookedUntil,
			BackTime:    d.BackTime,
			FreeTime:    d.FreeTime,
		}
	}
	return resp
}
