package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aselbek/jobboard/config"
	"github.com/aselbek/jobboard/internal/email"
	"github.com/aselbek/jobboard/internal/health"
	"github.com/aselbek/jobboard/internal/infrastructure/postgres"
	ctxlog "github.com/aselbek/jobboard/internal/log"
	"github.com/aselbek/jobboard/internal/metrics"
	httptransport "github.com/aselbek/jobboard/internal/transport/http"
	"github.com/aselbek/jobboard/internal/transport/http/handler"
	"github.com/aselbek/jobboard/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	savedJobRepo := postgres.NewSavedJobRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)

	emailSender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)

	authUsecase := usecase.NewAuthUsecase(userRepo, []byte(cfg.JWTSecret))
	userUsecase := usecase.NewUserUsecase(userRepo)
	jobUsecase := usecase.NewJobUsecase(jobRepo)
	applicationUsecase := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo, emailSender, logger)
	savedJobUsecase := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	messageUsecase := usecase.NewMessageUsecase(messageRepo)

	handlers := httptransport.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, logger),
		User:        handler.NewUserHandler(userUsecase, logger),
		Job:         handler.NewJobHandler(jobUsecase, logger),
		Application: handler.NewApplicationHandler(applicationUsecase, logger),
		SavedJob:    handler.NewSavedJobHandler(savedJobUsecase, logger),
		Message:     handler.NewMessageHandler(messageUsecase, logger),
	}

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, handlers, []byte(cfg.JWTSecret)),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
