package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/puzzlefeed/connections-api/internal/config"
	"github.com/puzzlefeed/connections-api/internal/handler"
	"github.com/puzzlefeed/connections-api/internal/logger"
	"github.com/puzzlefeed/connections-api/internal/middleware"
	"github.com/puzzlefeed/connections-api/internal/repository"
	"github.com/puzzlefeed/connections-api/internal/router"
	"github.com/puzzlefeed/connections-api/internal/server"
	"github.com/puzzlefeed/connections-api/internal/service"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Bootstrap logger for failures before config is loaded.
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	appLogger := logger.New(cfg)

	srv, err := server.New(cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	mws := middleware.NewMiddlewares(srv)

	e := router.New(srv, mws, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}

	appLogger.Info().Msg("server stopped")
}
