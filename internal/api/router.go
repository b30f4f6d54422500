package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zealand/roombooking/internal/auth"
	"github.com/zealand/roombooking/internal/booking"
	bookingHttp "github.com/zealand/roombooking/internal/booking/http"
	"github.com/zealand/roombooking/internal/filteroption"
	filterHttp "github.com/zealand/roombooking/internal/filteroption/http"
	"github.com/zealand/roombooking/internal/user"
	userHttp "github.com/zealand/roombooking/internal/user/http"
)

// Config holds the dependencies required to build the router.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	LoginRatePerMinute int

	UserService    user.Service
	BookingService booking.Service
	FilterService  filteroption.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (request id, access log, recovery, CORS, auth) and registering routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - RequestID: tags every request and response with X-Request-Id.
	// - AccessLog: one structured log line per request.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestID(), AccessLog(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	// Production only answers the configured origins; without any, cross-origin calls are not served.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", requestIDHeader}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	if !cfg.IsProduction {
		corsConfig.AllowAllOrigins = true
		r.Use(cors.New(corsConfig))
	} else if origins := splitOrigins(cfg.ProdOrigins); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
		r.Use(cors.New(corsConfig))
	}

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	loginLimiter := NewLoginRateLimiter(cfg.LoginRatePerMinute).Middleware()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.JWTManager)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	filterHandler := filterHttp.NewHandler(cfg.FilterService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, loginLimiter)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		filterHttp.RegisterRoutes(v1, filterHandler, authMiddleware)
	}

	return r
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
