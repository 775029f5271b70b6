package http

import (
	"time"

	"github.com/fleetyard/availability-backend/internal/fleet"
	"github.com/fleetyard/availability-backend/internal/pkg/request"
)

// ListResourcesRequest defines query parameters for listing fleet resources.
type ListResourcesRequest struct {
	request.ListParams
	Active *bool  `form:"active"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=name sku created_at"`
}

type ResourceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SKU             string    `json:"sku"`
	BufferBeforeMin int       `json:"buffer_before_min"`
	BufferAfterMin  int       `json:"buffer_after_min"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewResourceResponse(res *fleet.Resource) ResourceResponse {
	return ResourceResponse{
		ID:              res.ID,
		Name:            res.Name,
		SKU:             res.SKU,
		BufferBeforeMin: int(res.BufferBefore / time.Minute),
		BufferAfterMin:  int(res.BufferAfter / time.Minute),
		Active:          res.Active,
		CreatedAt:       res.CreatedAt,
	}
}

type CreateResourceRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	SKU             string `json:"sku" binding:"omitempty,max=64"`
	BufferBeforeMin int    `json:"buffer_before_min" binding:"omitempty,min=0,max=1440"`
	BufferAfterMin  int    `json:"buffer_after_min" binding:"omitempty,min=0,max=1440"`
	Active          *bool  `json:"active"`
}

type UpdateResourceRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	SKU             *string `json:"sku" binding:"omitempty,max=64"`
	BufferBeforeMin *int    `json:"buffer_before_min" binding:"omitempty,min=0,max=1440"`
	BufferAfterMin  *int    `json:"buffer_after_min" binding:"omitempty,min=0,max=1440"`
	Active          *bool   `json:"active"`
}
