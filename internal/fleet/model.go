package fleet

import (
	"net/http"
	"time"

	"github.com/fleetyard/availability-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "resource not found")
	ErrNameRequired   = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrSKUTaken       = apperror.New(http.StatusConflict, "a resource with this SKU already exists")
	ErrNegativeBuffer = apperror.New(http.StatusBadRequest, "buffer durations cannot be negative")
)

// Resource is a rentable unit of the fleet (e.g., Van 3, Trailer B).
// BufferBefore and BufferAfter are the logistics padding (cleaning, handover)
// applied around each of its reservations by the availability engine.
// Inactive resources are accessories or retired units and never appear on
// the dashboard.
type Resource struct {
	ID           string
	Name         string
	SKU          string
	BufferBefore time.Duration
	BufferAfter  time.Duration
	Active       bool
	CreatedAt    time.Time
}

// Filter defines parameters for listing fleet resources.
type Filter struct {
	Active    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
