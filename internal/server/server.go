package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"spenzly/internal/config"
	"spenzly/internal/handlers"
	"spenzly/internal/middleware"
	"spenzly/internal/repositories"
	"spenzly/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const (
	bodyLimit   = "1M"
	idleTimeout = 120 * time.Second
)

// Dependencies are the collaborators the HTTP surface needs. Sessions and
// Users are optional and only enable the development session endpoint;
// Redis is optional and only feeds the health check.
type Dependencies struct {
	Config   *config.Config
	Ledger   services.LedgerServiceInterface
	Identity services.IdentityResolverInterface
	Sessions services.SessionIssuerInterface
	Users    repositories.UserRepositoryInterface
	Metrics  services.MetricsRecorderInterface
	Database handlers.DatabaseChecker
	Redis    redis.Cmdable
	Registry *prometheus.Registry
}

type Server struct {
	echo        *echo.Echo
	config      *config.ServerConfig
	rateLimiter *middleware.RateLimiter
}

func New(deps Dependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(deps.Registry).Handle

	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit(bodyLimit))
	if origins := deps.Config.Server.CORSAllowOrigins; len(origins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:  origins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
			ExposeHeaders: []string{middleware.TraceIDHeader},
		}))
	}

	s := &Server{
		echo:        e,
		config:      &deps.Config.Server,
		rateLimiter: middleware.NewRateLimiter(deps.Config.Security),
	}
	s.registerRoutes(deps)

	return s
}

func (s *Server) registerRoutes(deps Dependencies) {
	health := handlers.NewHealthCheckHandler(deps.Database, deps.Redis)
	s.echo.GET("/health", health.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	api := s.echo.Group("/api/v1",
		middleware.RequireAuth(deps.Identity, deps.Metrics),
		s.rateLimiter.Middleware(),
	)

	accounts := handlers.NewAccountHandler(deps.Ledger)
	api.POST("/accounts", accounts.CreateAccount)
	api.GET("/accounts", accounts.ListAccounts)
	api.PATCH("/accounts/:accountId/default", accounts.SetDefaultAccount)

	transactions := handlers.NewTransactionHandler(deps.Ledger)
	api.POST("/transactions", transactions.CreateTransaction)
	api.GET("/dashboard/transactions", transactions.ListDashboardTransactions)

	dashboard := handlers.NewDashboardHandler(deps.Ledger)
	api.GET("/dashboard", dashboard.GetDashboard)

	if deps.Sessions != nil && deps.Users != nil && !deps.Config.IsProduction() {
		dev := handlers.NewDevHandler(deps.Users, deps.Sessions)
		s.echo.POST("/dev/session", dev.CreateSession)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until Shutdown is called. The rate limiter's janitor stops
// with ctx.
func (s *Server) Start(ctx context.Context) error {
	go s.rateLimiter.Run(ctx)

	httpServer := &http.Server{
		Addr:         s.config.Address(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  idleTimeout,
	}

	slog.Info("Starting HTTP server", "addr", httpServer.Addr, "environment", s.config.Environment)
	if err := s.echo.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}
