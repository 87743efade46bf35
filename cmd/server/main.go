package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"rivals-tracker/internal/config"
	"rivals-tracker/internal/constants"
	fxmodules "rivals-tracker/internal/fx"
	"rivals-tracker/internal/repository"
	"rivals-tracker/internal/server"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	handler *server.Handler,
	cfg *config.Config,
	db *sql.DB,
	cache *repository.CacheRepository,
	logger zerolog.Logger,
) {
	router := server.SetupRouter(handler, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: c.Handler(router),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				pruneCtx, cancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
				defer cancel()
				cache.DeleteExpired(pruneCtx, constants.CachePruneMaxAge)
			}()
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
