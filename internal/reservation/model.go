package reservation

import (
	"context"
	"time"
)

// RawReservation is a reservation record as delivered by the external booking
// system. Pickup and return are the unbuffered, human-facing moments as
// timestamp strings; normalization and buffer padding happen downstream in
// the availability engine, never here.
type RawReservation struct {
	ResourceID string `json:"resource_id"`
	PickupTime string `json:"pickup_time"`
	ReturnTime string `json:"return_time"`
}

// Source delivers a fresh snapshot of reservations overlapping [from, till)
// for the given resources.
type Source interface {
	Snapshot(ctx context.Context, resourceIDs []string, from, till time.Time) ([]RawReservation, error)
}
