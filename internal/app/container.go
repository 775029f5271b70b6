package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fleetyard/availability-backend/internal/api"
	"github.com/fleetyard/availability-backend/internal/auth"
	"github.com/fleetyard/availability-backend/internal/availability"
	"github.com/fleetyard/availability-backend/internal/cache"
	"github.com/fleetyard/availability-backend/internal/config"
	"github.com/fleetyard/availability-backend/internal/fleet"
	"github.com/fleetyard/availability-backend/internal/reservation"
	"github.com/fleetyard/availability-backend/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	JWTManager  *auth.JWTManager
	ReportCache *cache.ReportCache
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool) *Container {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	// Staff module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher)

	// Fleet catalog module
	fleetRepo := fleet.NewPgxRepository(pool)
	fleetService := fleet.NewService(fleetRepo)

	// Reservation source: the external booking system
	bookingClient := reservation.NewAPIClient(cfg.BookingAPIURL, cfg.BookingAPIToken)

	// Availability engine
	availService := availability.NewService(fleetService, bookingClient, availability.Policy{
		OffsetMinutes:   cfg.TZOffsetMinutes,
		MinGap:          cfg.MinRentableGap,
		EarlyCutoffHour: cfg.EarlyCutoffHour,
		HorizonDays:     cfg.HorizonDays,
	})

	// Optional redis-backed report cache
	var reportCache *cache.ReportCache
	if cfg.RedisAddr != "" {
		reportCache = cache.New(cfg.RedisAddr, cfg.CacheTTL)
	}

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		FleetService:        fleetService,
		AvailabilityService: availService,
		ReportCache:         reportCache,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:      router,
		JWTManager:  jwtManager,
		ReportCache: reportCache,
	}
}
