package main

import (
	"bytes"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/protein-calc-go-api/internal/chart"
	"lg/protein-calc-go-api/internal/protein"
	"lg/protein-calc-go-api/internal/units"
)

// calculatorInputErrors are returned for bad user input and map to 400.
var calculatorInputErrors = []error{
	protein.ErrInvalidWeight,
	protein.ErrInvalidAge,
	protein.ErrInvalidDailyProtein,
	protein.ErrInvalidBodyFat,
	protein.ErrInvalidLeanMassRate,
	protein.ErrFormValuesRequired,
	units.ErrUnknownUnit,
}

// calculatorErrorStatus maps a calculator error to an HTTP status.
func calculatorErrorStatus(err error) int {
	for _, target := range calculatorInputErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// validateEnums rejects unknown activity levels and goals at the API boundary.
// The calculator itself falls back to defaults for these, which would hide a
// client bug.
func validateEnums(level protein.ActivityLevel, goal protein.Goal) string {
	if !level.Valid() {
		return "activity_level must be one of: " + joinValues(protein.ActivityLevels())
	}
	if !goal.Valid() {
		return "goal must be one of: " + joinValues(protein.Goals())
	}
	return ""
}

func joinValues[T ~string](vals []T) string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// getProteinOptions lists the valid activity levels and goals together with
// their lookup-table values, for populating the calculator form.
// GET /api/protein/options.
func (h *Handler) getProteinOptions(c *gin.Context) {
	type activityOption struct {
		Value       protein.ActivityLevel `json:"value"`
		Requirement protein.Requirement   `json:"requirement"`
	}
	type goalOption struct {
		Value      protein.Goal           `json:"value"`
		Adjustment protein.GoalAdjustment `json:"adjustment"`
	}

	levels := make([]activityOption, 0, len(protein.ActivityLevels()))
	for _, l := range protein.ActivityLevels() {
		levels = append(levels, activityOption{Value: l, Requirement: protein.GetProteinRequirement(l)})
	}
	goals := make([]goalOption, 0, len(protein.Goals()))
	for _, g := range protein.Goals() {
		goals = append(goals, goalOption{Value: g, Adjustment: protein.GetGoalAdjustment(g)})
	}

	c.JSON(http.StatusOK, gin.H{"activity_levels": levels, "goals": goals})
}

// calculateProtein runs the full protein calculation for a form submission.
// POST /api/protein/calculate (public). Validation failures return 400 with the
// calculator's message.
func (h *Handler) calculateProtein(c *gin.Context) {
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

	c.JSON(http.StatusOK, result)
}

// calculateLeanMassProtein computes daily protein from lean body mass.
// POST /api/protein/lean-mass (public).
func (h *Handler) calculateLeanMassProtein(c *gin.Context) {
	var body leanMassRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	rate := protein.DefaultLeanMassPerKg
	if body.ProteinPerKgLeanMass != nil {
		rate = *body.ProteinPerKgLeanMass
	}

	grams, err := protein.CalculateProteinFromLeanMass(body.WeightKG, body.BodyFatPercentage, rate)
	if err != nil {
		apiError(c, calculatorErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, leanMassResponse{
		LeanMassKG:           round1(protein.LeanMass(body.WeightKG, body.BodyFatPercentage)),
		ProteinPerKgLeanMass: rate,
		ProteinGrams:         round1(grams),
	})
}

// getRecommendation classifies an intake given in g/kg.
// GET /api/protein/recommendation?per_kg=1.6 (public).
func (h *Handler) getRecommendation(c *gin.Context) {
	perKg, err := strconv.ParseFloat(c.Query("per_kg"), 64)
	if err != nil || math.IsNaN(perKg) || perKg < 0 {
		apiError(c, http.StatusBadRequest, "per_kg must be a non-negative number")
		return
	}
	c.JSON(http.StatusOK, protein.GetProteinRecommendation(perKg))
}

// getProteinChart renders a PNG of daily protein against body weight.
// GET /api/protein/chart?activity_level=...&goal=...&age=30 (public).
func (h *Handler) getProteinChart(c *gin.Context) {
	level := protein.ActivityLevel(c.Query("activity_level"))
	goal := protein.Goal(c.DefaultQuery("goal", string(protein.Maintain)))
	if msg := validateEnums(level, goal); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}
	age, err := strconv.Atoi(c.Query("age"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "age must be a whole number")
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderProteinCurve(&buf, chart.Params{ActivityLevel: level, Goal: goal, Age: age}); err != nil {
		status := calculatorErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.logger.Error().Err(err).Str("func", "getProteinChart").Msg("chart render failed")
			apiError(c, status, "failed to render chart")
			return
		}
		apiError(c, status, err.Error())
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
