package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zealand/roombooking/internal/api"
	"github.com/zealand/roombooking/internal/auth"
	"github.com/zealand/roombooking/internal/booking"
	bookinghttp "github.com/zealand/roombooking/internal/booking/http"
	"github.com/zealand/roombooking/internal/db"
	"github.com/zealand/roombooking/internal/filteroption"
	"github.com/zealand/roombooking/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DB           db.Querier
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int

	WorkingHoursStart  string
	WorkingHoursEnd    string
	Location           *time.Location
	LoginRatePerMinute int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	policy, err := bookingPolicy(cfg)
	if err != nil {
		return nil, err
	}
	if err := bookinghttp.RegisterValidators(); err != nil {
		return nil, err
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DB)
	userService := user.NewService(userRepo, passwordHasher)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DB)
	bookingService := booking.NewService(bookingRepo, policy)

	// Filter Option Module
	filterRepo := filteroption.NewPgxRepository(cfg.DB)
	filterService := filteroption.NewService(filterRepo)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		UserService:        userService,
		BookingService:     bookingService,
		FilterService:      filterService,
		JWTManager:         jwtManager,
	})

	return &Container{Router: router}, nil
}

func bookingPolicy(cfg Config) (booking.Policy, error) {
	policy := booking.DefaultPolicy()

	if cfg.WorkingHoursStart != "" {
		t, err := booking.ParseTimeOfDay(cfg.WorkingHoursStart)
		if err != nil {
			return policy, fmt.Errorf("invalid working hours start: %w", err)
		}
		policy.WorkStart = t
	}
	if cfg.WorkingHoursEnd != "" {
		t, err := booking.ParseTimeOfDay(cfg.WorkingHoursEnd)
		if err != nil {
			return policy, fmt.Errorf("invalid working hours end: %w", err)
		}
		policy.WorkEnd = t
	}
	if policy.WorkEnd.Before(policy.WorkStart) {
		return policy, fmt.Errorf("working hours end %s is before start %s", policy.WorkEnd, policy.WorkStart)
	}
	if cfg.Location != nil {
		policy.Location = cfg.Location
	}
	return policy, nil
}
