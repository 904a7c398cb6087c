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

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/chessgrid/chess-stats/config"
	"github.com/chessgrid/chess-stats/data"
	"github.com/chessgrid/chess-stats/handlers"
	api "github.com/chessgrid/chess-stats/routes"
	"github.com/chessgrid/chess-stats/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	store := data.NewStore()
	logger.Info("fixture store initialized")

	tournamentService := services.NewTournamentService(store, cfg.DefaultCurrency)
	rankingService := services.NewRankingService(store)
	playerService := services.NewPlayerService(store)
	forumService := services.NewForumService(store, nil)
	logger.Info("services initialized")

	tournamentHandler := handlers.NewTournamentHandler(tournamentService, logger, cfg.DefaultPageSize, cfg.MaxPageSize)
	rankingHandler := handlers.NewRankingHandler(rankingService, logger, cfg.DefaultPageSize, cfg.MaxPageSize)
	playerHandler := handlers.NewPlayerHandler(playerService, logger, cfg.DefaultPageSize, cfg.MaxPageSize)
	forumHandler := handlers.NewForumHandler(forumService, logger, cfg.DefaultPageSize, cfg.MaxPageSize)

	router := chi.NewRouter()
	api.SetupRoutes(router, logger, cfg.AllowedOrigins, tournamentHandler, rankingHandler, playerHandler, forumHandler)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server shutdown complete")
}
