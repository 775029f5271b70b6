package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fleetyard/availability-backend/internal/auth"
	"github.com/fleetyard/availability-backend/internal/availability"
	availHttp "github.com/fleetyard/availability-backend/internal/availability/http"
	"github.com/fleetyard/availability-backend/internal/cache"
	"github.com/fleetyard/availability-backend/internal/fleet"
	fleetHttp "github.com/fleetyard/availability-backend/internal/fleet/http"
	"github.com/fleetyard/availability-backend/internal/user"
	userHttp "github.com/fleetyard/availability-backend/internal/user/http"
)

// Config holds the services and settings the router assembles.
type Config struct {
	IsProduction        bool
	ProdOrigins         string
	UserService         user.Service
	FleetService        fleet.Service
	AvailabilityService availability.Service
	ReportCache         *cache.ReportCache
	JWTManager          *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: middleware (CORS, logger,
// recovery) and the routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS for the dashboard frontend.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	fleetHandler := fleetHttp.NewHandler(cfg.FleetService)
	availHandler := availHttp.NewHandler(cfg.AvailabilityService, cfg.ReportCache)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		fleetHttp.RegisterRoutes(v1, fleetHandler, authMiddleware, adminMiddleware)
		availHttp.RegisterRoutes(v1, availHandler, authMiddleware)
	}

	return r
}
