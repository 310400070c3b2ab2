package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/footycomp/tipping-system/config"
	"github.com/footycomp/tipping-system/db"
	"github.com/footycomp/tipping-system/fixtures"
	"github.com/footycomp/tipping-system/handlers"
	"github.com/footycomp/tipping-system/live"
	"github.com/footycomp/tipping-system/repositories"
	api "github.com/footycomp/tipping-system/routes"
	"github.com/footycomp/tipping-system/services"
	"github.com/footycomp/tipping-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.LogoStorageConfigured() {
		uploader, err = storage.NewR2Uploader(storage.R2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("R2 logo storage initialized")
	} else {
		logger.Info("R2 logo storage not configured, logo uploads disabled")
	}

	wsHub := live.NewHub(logger)
	go wsHub.Run()
	logger.Info("websocket hub started")

	roundRepo := repositories.NewPostgresRoundRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	tipperRepo := repositories.NewPostgresTipperRepository(dbConn)
	tipRepo := repositories.NewPostgresTipRepository(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	reportingRepo := repositories.NewPostgresReportingRepository(dbConn)
	logger.Info("repositories initialized")

	reportService := services.NewReportService(reportingRepo, repositories.DefaultScoringRules())
	notifier := live.NewNotifier(wsHub, reportService, logger)

	allocator := fixtures.New()
	authService := services.NewAuthService(userRepo)
	roundService := services.NewRoundService(dbConn, roundRepo, gameRepo, tipRepo, teamRepo, allocator, notifier, logger)
	teamService := services.NewTeamService(teamRepo, gameRepo, uploader)
	tipperService := services.NewTipperService(tipperRepo)
	tipService := services.NewTipService(dbConn, tipRepo, gameRepo, notifier)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	roundHandler := handlers.NewRoundHandler(roundService)
	teamHandler := handlers.NewTeamHandler(teamService)
	tipperHandler := handlers.NewTipperHandler(tipperService)
	tipHandler := handlers.NewTipHandler(tipService)
	reportHandler := handlers.NewReportHandler(reportService, logger)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authHandler,
		roundHandler,
		teamHandler,
		tipperHandler,
		tipHandler,
		reportHandler,
		webSocketHandler,
		cfg.JWTSecretKey,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
