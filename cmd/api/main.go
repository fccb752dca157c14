// The api command boots the NC News API server: it loads configuration,
// runs database migrations, wires repositories, services, handlers, and
// middleware, and serves HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncnews/api/internal/config"
	"github.com/ncnews/api/internal/database"
	"github.com/ncnews/api/internal/handler"
	loggerPkg "github.com/ncnews/api/internal/logger"
	"github.com/ncnews/api/internal/middleware"
	"github.com/ncnews/api/internal/repository"
	"github.com/ncnews/api/internal/router"
	"github.com/ncnews/api/internal/server"
	"github.com/ncnews/api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		fallback := loggerPkg.Fallback()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := loggerPkg.New(cfg)

	if err := database.Migrate(context.Background(), &logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	srv, err := server.New(cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.New(middlewares, handlers))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	logger.Info().Msg("server stopped")
}
