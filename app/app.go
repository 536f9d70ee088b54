// Package app wires configuration, database, eventbus, services, and the
// HTTP surface into one runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"

	"github.com/ishaki/abhimatagolf-sub001/api"
	courseservice "github.com/ishaki/abhimatagolf-sub001/app/modules/course/application"
	coursedb "github.com/ishaki/abhimatagolf-sub001/app/modules/course/infrastructure/repositories"
	eventdb "github.com/ishaki/abhimatagolf-sub001/app/modules/event/infrastructure/repositories"
	leaderboardservice "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/application"
	leaderboardevents "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/events"
	leaderboardhandlers "github.com/ishaki/abhimatagolf-sub001/app/modules/leaderboard/infrastructure/handlers"
	"github.com/ishaki/abhimatagolf-sub001/app/modules/live"
	scoringservice "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/application"
	scoringevents "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/events"
	scoringdb "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/infrastructure/repositories"
	"github.com/ishaki/abhimatagolf-sub001/config"
	"github.com/ishaki/abhimatagolf-sub001/db"
	"github.com/ishaki/abhimatagolf-sub001/internal/eventbus"
	"github.com/ishaki/abhimatagolf-sub001/internal/observability"
)

// App holds every wired component of the service.
type App struct {
	Cfg    *config.Config
	Logger *slog.Logger

	DB              *bun.DB
	Bus             *eventbus.Bus
	WatermillRouter *message.Router
	Display         *live.Display

	ScoringService     *scoringservice.ScoringService
	LeaderboardService *leaderboardservice.LeaderboardService

	httpServer    *http.Server
	metricsServer *http.Server
}

// NewApp initializes the application with the necessary services and
// configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(
		cfg.Observability.LogLevel,
		cfg.Observability.LogFormat,
		cfg.Observability.Environment,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)
	tracer := observability.Tracer(cfg.Observability.TracingEnabled, "abhimatagolf")

	bunDB, err := db.NewBunDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus := eventbus.New(logger)

	courseRepo := &coursedb.CourseDBImpl{DB: bunDB}
	eventRepo := &eventdb.EventDBImpl{DB: bunDB}
	scoreRepo := &scoringdb.ScoringDBImpl{DB: bunDB}

	scoringService := scoringservice.NewScoringService(
		scoreRepo, eventRepo, courseRepo, bus, logger, metrics, tracer, bunDB,
	)
	leaderboardService := leaderboardservice.NewLeaderboardService(
		scoreRepo, eventRepo, courseRepo, bus, logger, metrics, tracer, bunDB,
	)
	courseService := courseservice.NewCourseService(courseRepo, logger)

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}
	router.AddMiddleware(middleware.CorrelationID, middleware.Recoverer)

	lbHandlers := leaderboardhandlers.NewLeaderboardHandlers(leaderboardService, logger, metrics)
	router.AddHandler(
		"leaderboard.on_score_submitted",
		scoringevents.ScoreSubmittedSubject,
		bus.Subscriber(),
		leaderboardevents.LeaderboardUpdatedSubject,
		bus.Publisher(),
		lbHandlers.HandleScoreSubmitted(),
	)

	var display *live.Display
	if cfg.Live.EventID != "" {
		liveEventID, err := uuid.Parse(cfg.Live.EventID)
		if err != nil {
			return nil, fmt.Errorf("invalid live event id %q: %w", cfg.Live.EventID, err)
		}
		display = live.NewDisplay(
			func(ctx context.Context) (*leaderboardservice.Snapshot, error) {
				return leaderboardService.Snapshot(ctx, liveEventID, leaderboardservice.Filters{})
			},
			cfg.Live.PollInterval,
			cfg.Live.CarouselPeriod,
			logger,
			metrics,
		)
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.HTTP.SubmitRatePerSecond), cfg.HTTP.SubmitBurst)
	apiHandler := api.NewHandler(scoringService, leaderboardService, courseService, display, logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(apiHandler, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{
		Addr:              cfg.Observability.MetricsAddress,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		Cfg:                cfg,
		Logger:             logger,
		DB:                 bunDB,
		Bus:                bus,
		WatermillRouter:    router,
		Display:            display,
		ScoringService:     scoringService,
		LeaderboardService: leaderboardService,
		httpServer:         httpServer,
		metricsServer:      metricsServer,
	}, nil
}

// Run starts the watermill router, the live display timers, and both HTTP
// listeners, then blocks until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	go func() {
		if err := a.WatermillRouter.Run(ctx); err != nil {
			errCh <- fmt.Errorf("watermill router: %w", err)
		}
	}()

	if a.Display != nil {
		a.Display.Run(ctx)
	}

	go func() {
		a.Logger.Info("HTTP server listening", slog.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Close tears everything down: HTTP listeners first, then display timers,
// then the router, bus, and database.
func (a *App) Close(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("Failed to shut down HTTP server", slog.Any("error", err))
	}
	if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("Failed to shut down metrics server", slog.Any("error", err))
	}

	if a.Display != nil {
		a.Display.Stop()
	}
	if err := a.WatermillRouter.Close(); err != nil {
		a.Logger.Error("Failed to close watermill router", slog.Any("error", err))
	}
	if err := a.Bus.Close(); err != nil {
		a.Logger.Error("Failed to close event bus", slog.Any("error", err))
	}
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database", slog.Any("error", err))
	}
}
