package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/TallerTAW/court-reservation/internal/api"
	"github.com/TallerTAW/court-reservation/internal/auth"
	"github.com/TallerTAW/court-reservation/internal/booking"
	"github.com/TallerTAW/court-reservation/internal/coupon"
	"github.com/TallerTAW/court-reservation/internal/court"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	Location     *time.Location
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Court Module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo)

	// Coupon Module
	couponRepo := coupon.NewPgxRepository(cfg.DBPool)
	couponService := coupon.NewService(couponRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, courtService, couponService, cfg.Location)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		CourtService:   courtService,
		CouponService:  couponService,
		BookingService: bookingService,
		JWTManager:     jwtManager,
		Logger:         cfg.Logger,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
