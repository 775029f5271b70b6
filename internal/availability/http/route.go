package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/availability")
	group.Use(authMiddleware)
	{
		group.GET("", h.Overview)
		group.GET("/:id", h.Get)
	}
}
