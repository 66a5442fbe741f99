package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Handler holds shared dependencies (db pool, logger) for all route handlers.
// db is nil when the server runs without a database; only the public
// calculator routes are registered in that case.
type Handler struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

/* ─── Database helpers ────────────────────────────────────────────────── */

// queryOne runs a query and scans the first row into T using RowToStructByName.
// Logs query and scan errors for debugging (e.g. struct/column mismatches).
func queryOne[T any](h *Handler, c *gin.Context, sql string, args pgx.NamedArgs) (T, error) {
	rows, err := h.db.Query(c, sql, args)
	if err != nil {
		h.logger.Error().Err(err).Str("func", "queryOne").Msg("query error")
		var zero T
		return zero, err
	}
	result, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		h.logger.Error().Err(err).Str("func", "queryOne").Msg("scan error")
	}
	return result, err
}

// queryMany runs a query and scans all rows into []T using RowToStructByName.
func queryMany[T any](h *Handler, c *gin.Context, sql string, args pgx.NamedArgs) ([]T, error) {
	rows, err := h.db.Query(c, sql, args)
	if err != nil {
		h.logger.Error().Err(err).Str("func", "queryMany").Msg("query error")
		return nil, err
	}
	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		h.logger.Error().Err(err).Str("func", "queryMany").Msg("scan error")
	}
	return results, err
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// getDBPool creates a connection pool. We use a pool (not a single conn) because
// hosted Postgres providers close idle connections after a few minutes.
func getDBPool(dbURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse DB URL: %w", err)
	}
	// Simple protocol avoids "cached plan must not change result type" errors
	// from server-side prepared statement caches after schema changes.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return pool, nil
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	// Public calculator routes
	pub := router.Group("/api/protein")
	pub.GET("/options", h.getProteinOptions)
	pub.POST("/calculate", h.calculateProtein)
	pub.POST("/lean-mass", h.calculateLeanMassProtein)
	pub.GET("/recommendation", h.getRecommendation)
	pub.GET("/chart", h.getProteinChart)

	if h.db == nil {
		return
	}

	router.POST("/api/login", h.login)

	// Authenticated routes
	api := router.Group("/api", h.authMiddleware())
	api.GET("/protein/profile", h.getProfile)
	api.PATCH("/protein/profile", h.patchProfile)
	api.GET("/protein/calculations", h.listCalculations)
	api.POST("/protein/calculations", h.createCalculation)
	api.GET("/protein/daily", h.getDailyProtein)
	api.GET("/protein/week", h.getWeekProtein)
	api.POST("/protein/log-items", h.createProteinLogItem)
	api.PATCH("/protein/log-items/:id", h.updateProteinLogItem)
	api.DELETE("/protein/log-items/:id", h.deleteProteinLogItem)
	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.upsertWeightEntry)
}
