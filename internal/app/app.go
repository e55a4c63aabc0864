package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nmoskvina/lexiday/internal/adapter/postgres"
	"github.com/nmoskvina/lexiday/internal/adapter/postgres/flashcard"
	"github.com/nmoskvina/lexiday/internal/adapter/postgres/history"
	"github.com/nmoskvina/lexiday/internal/adapter/postgres/progress"
	"github.com/nmoskvina/lexiday/internal/adapter/postgres/session"
	"github.com/nmoskvina/lexiday/internal/adapter/postgres/streak"
	"github.com/nmoskvina/lexiday/internal/auth"
	"github.com/nmoskvina/lexiday/internal/config"
	"github.com/nmoskvina/lexiday/internal/service/daily"
	"github.com/nmoskvina/lexiday/internal/service/quiz"
	"github.com/nmoskvina/lexiday/internal/transport/middleware"
	"github.com/nmoskvina/lexiday/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until the
// process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := Migrate(ctx, cfg.Database.DSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	// Repositories.
	cardRepo := flashcard.New(pool, cfg.Daily.MasteredThreshold)
	progressRepo := progress.New(pool)
	sessionRepo := session.New(pool)
	historyRepo := history.New(pool)
	streakRepo := streak.New(pool)

	// Services.
	quizSvc := quiz.NewService(logger, cardRepo, progressRepo, quiz.Options{
		OptionCount:           cfg.Quiz.OptionCount,
		SimilarityMaxDistance: cfg.Quiz.SimilarityMaxDistance,
	})
	dailySvc := daily.NewService(logger, cardRepo, sessionRepo, historyRepo, streakRepo, daily.Config{
		Location:         cfg.Daily.Location(),
		ExhaustedMessage: cfg.Daily.ExhaustedMessage,
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Handlers.
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	dailyHandler := rest.NewDailyHandler(dailySvc, logger)
	quizHandler := rest.NewQuizHandler(quizSvc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /api/v1/daily", dailyHandler.GetState)
	mux.HandleFunc("POST /api/v1/daily/reveal", dailyHandler.Reveal)
	mux.HandleFunc("POST /api/v1/daily/missed", dailyHandler.Missed)
	mux.HandleFunc("POST /api/v1/daily/gotit", dailyHandler.GotIt)
	mux.HandleFunc("GET /api/v1/quiz/question", quizHandler.Question)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	handler := middleware.Chain(mws...)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
