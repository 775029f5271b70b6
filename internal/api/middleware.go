package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetyard/availability-backend/internal/auth"
	"github.com/fleetyard/availability-backend/internal/user"
)

// RequireAdmin ensures the authenticated staff member is an admin.
// It MUST be used after auth.AuthRequired middleware. The admin flag is
// checked against the database, not the token, so a revoked admin loses
// access as soon as the flag is cleared.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
