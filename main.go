package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"lg/protein-calc-go-api/internal/logging"
)

func main() {
	cfg, envLoaded := loadConfig()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if !envLoaded {
		logger.Debug().Msg("no .env file loaded, using process environment")
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	h := &Handler{logger: logging.Component(logger, "api")}
	if cfg.DBURL != "" {
		pool, err := getDBPool(cfg.DBURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("unable to connect to database")
		}
		defer pool.Close()
		h.db = pool
		logger.Info().Msg("DB pool ready")
	} else {
		logger.Warn().Msg("DB_URL not set, account endpoints disabled")
	}

	router := gin.New()
	router.Use(gin.Recovery(), logging.GinMiddleware(logging.Component(logger, "http")))
	if err := router.SetTrustedProxies(nil); err != nil {
		logger.Fatal().Err(err).Msg("set trusted proxies")
	}
	h.registerRoutes(router)

	// The calculator form is served from a separate origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting protein calculator API")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
