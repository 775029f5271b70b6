package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetyard/availability-backend/internal/availability"
	"github.com/fleetyard/availability-backend/internal/cache"
	"github.com/fleetyard/availability-backend/internal/pkg/request"
	"github.com/fleetyard/availability-backend/internal/pkg/response"
)

const (
	overviewCacheKey    = "availability:overview"
	resourceCachePrefix = "availability:resource:"
)

type Handler struct {
	service availability.Service
	cache   *cache.ReportCache
}

// NewHandler creates the availability handler. reportCache may be nil, in
// which case every request recomputes from a fresh snapshot.
func NewHandler(service availability.Service, reportCache *cache.ReportCache) *Handler {
	return &Handler{
		service: service,
		cache:   reportCache,
	}
}

func (h *Handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	if payload, ok := h.cache.Get(ctx, overviewCacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	reports, err := h.service.Overview(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ResourceAvailabilityResponse, len(reports))
	for i, r := range reports {
		items[i] = NewResourceAvailabilityResponse(r)
	}

	payload, err := json.Marshal(gin.H{"items": items})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cache.Set(ctx, overviewCacheKey, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	key := resourceCachePrefix + req.ID

	if payload, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	report, err := h.service.ForResource(ctx, req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload, err := json.Marshal(NewResourceAvailabilityResponse(report))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cache.Set(ctx, key, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
