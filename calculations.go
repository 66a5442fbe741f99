package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lg/protein-calc-go-api/internal/protein"
)

const (
	defaultCalculationsLimit = 20
	maxCalculationsLimit     = 100
)

// parseLimit reads a positive limit, applying the default and cap.
func parseLimit(raw string) (int, bool) {
	if raw == "" {
		return defaultCalculationsLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	if n > maxCalculationsLimit {
		n = maxCalculationsLimit
	}
	return n, true
}

// createCalculation runs a protein calculation and stores inputs and result.
// POST /api/protein/calculations. Body is the same shape as /api/protein/calculate.
func (h *Handler) createCalculation(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body protein.FormValues
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateEnums(body.ActivityLevel, body.Goal); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	result, err := protein.ProcessProteinCalculation(&body)
	if err != nil {
		apiError(c, calculatorErrorStatus(err), err.Error())
		return
	}

	// Encoded up front: the pool runs in simple-protocol mode, which sends
	// parameters as text and cannot infer a jsonb encoding for Go structs.
	inputsJSON, err := json.Marshal(body)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to encode calculation")
		return
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to encode calculation")
		return
	}

	saved, err := queryOne[savedCalculation](h, c,
		`INSERT INTO protein_calculations (id, user_id, inputs, result)
		 VALUES (@id, @userID, @inputs, @result)
		 RETURNING *`,
		pgx.NamedArgs{"id": uuid.New(), "userID": userID, "inputs": string(inputsJSON), "result": string(resultJSON)})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save calculation")
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// listCalculations returns the user's most recent saved calculations.
// GET /api/protein/calculations?limit=20 (max 100).
func (h *Handler) listCalculations(c *gin.Context) {
	userID := c.GetInt("user_id")
	limit, ok := parseLimit(c.Query("limit"))
	if !ok {
		apiError(c, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	calcs, err := queryMany[savedCalculation](h, c,
		`SELECT * FROM protein_calculations
		 WHERE user_id = @userID
		 ORDER BY created_at DESC
		 LIMIT @limit`,
		pgx.NamedArgs{"userID": userID, "limit": limit})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch calculations")
		return
	}
	if calcs == nil {
		calcs = []savedCalculation{}
	}

	c.JSON(http.StatusOK, calcs)
}
