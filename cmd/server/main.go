package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelby-dashboard/internal/config"
	"shelby-dashboard/internal/handlers"
	"shelby-dashboard/internal/middleware"
	"shelby-dashboard/internal/services"
	"shelby-dashboard/internal/sheets"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	e := buildServer(cfg)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("Server starting",
			"addr", addr,
			"environment", cfg.Server.Environment,
			"fetch_mode", cfg.Sheets.FetchMode,
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err.Error())
			os.Exit(1)
		}
	}()

	// Block until an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// buildServer wires the fetch source, services, handlers, and routes
func buildServer(cfg *config.Config) *echo.Echo {
	source, sample := newRowSource(cfg)

	metrics := services.NewPrometheusMetrics()
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	processor := services.NewSheetProcessorService(source, breaker, cfg.Cache.TTL, metrics)
	dashboard := services.NewDashboardService(processor, cfg.Program, sample)
	charts := services.NewChartService(processor, metrics)
	exports := services.NewExportService(processor, dashboard, metrics)

	dashboardHandler := handlers.NewDashboardHandler(dashboard)
	tableHandler := handlers.NewTableHandler(processor)
	chartHandler := handlers.NewChartHandler(charts)
	exportHandler := handlers.NewExportHandler(exports)
	healthHandler := handlers.NewHealthCheckHandler(cfg, breaker)
	pageHandler := handlers.NewPageHandler(dashboard)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	e.GET("/", pageHandler.GetDashboard)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/dashboard/metrics", dashboardHandler.GetMetrics)
	api.GET("/dashboard/volunteer", dashboardHandler.GetVolunteerPage)
	api.GET("/dashboard/forest", dashboardHandler.GetForestPage)
	api.GET("/dashboard/strategic", dashboardHandler.GetStrategicPage)

	api.GET("/participation", tableHandler.GetParticipation)
	api.GET("/satisfaction", tableHandler.GetSatisfaction)
	api.GET("/popular-events", tableHandler.GetPopularEvents)
	api.GET("/acres", tableHandler.GetAcresTimeline)
	api.GET("/surveys", tableHandler.GetSurveyResponses)
	api.GET("/barrier-ratings", tableHandler.GetBarrierRatings)
	api.GET("/sheets", tableHandler.GetSheets)
	api.POST("/cache/refresh", tableHandler.RefreshCache)

	api.GET("/charts/:name", chartHandler.GetChart)
	api.GET("/export.xlsx", exportHandler.GetWorkbook)

	return e
}

// newRowSource picks the spreadsheet fetch strategy from configuration.
// The second return value reports whether sample data should be served.
func newRowSource(cfg *config.Config) (sheets.RowSource, bool) {
	switch cfg.Sheets.FetchMode {
	case config.FetchModeCSV:
		return sheets.NewCSVClient(cfg.Sheets), false
	case config.FetchModeSample:
		return sheets.NewNullSource(), true
	default:
		return sheets.NewClient(cfg.Sheets), false
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
