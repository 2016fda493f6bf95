package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobify-dev/jobs-api/config"
	"github.com/jobify-dev/jobs-api/database"
	"github.com/jobify-dev/jobs-api/logger"
	"github.com/jobify-dev/jobs-api/middleware"
	"github.com/jobify-dev/jobs-api/routes"
	"github.com/jobify-dev/jobs-api/token"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	log.Info().Str("driver", cfg.StoreDriver).Msg("starting server...")

	// Initialize the store
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := database.OpenStore(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}

	// Setup routes using the routes package (gorilla/mux)
	r := routes.SetupRoutes(routes.Deps{
		Store:       store,
		Tokens:      token.NewService(cfg.JWTSecret, cfg.JWTLifetime),
		AuthLimiter: middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow, cfg.TrustProxy),
		StaticDir:   cfg.StaticDir,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.RequestLogger(cfg.TrustProxy)(middleware.Recoverer(middleware.SecureHeaders(c.Handler(r)))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("error closing store")
	}
	log.Info().Msg("server exited")
}
