package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/protein-calc-go-api/internal/protein"
	"lg/protein-calc-go-api/internal/units"
)

var validSexes = map[string]bool{"male": true, "female": true}

var validUnits = map[string]bool{"metric": true, "imperial": true}

// ageOn returns whole years between dob and now.
func ageOn(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	return age
}

// profileFormValues builds calculator input from a stored profile. A non-nil
// latestWeightKG (most recent weigh-in) overrides the profile weight.
// Returns ok=false when a required field is missing or the age is outside the
// calculator's range.
func profileFormValues(p *proteinProfile, latestWeightKG *float64, now time.Time) (protein.FormValues, bool) {
	weight := p.WeightKG
	if latestWeightKG != nil {
		weight = latestWeightKG
	}
	if p.DateOfBirth == nil || weight == nil || p.ActivityLevel == nil || p.Goal == nil {
		return protein.FormValues{}, false
	}

	age := ageOn(p.DateOfBirth.Time, now)
	if age < protein.MinAge || age > protein.MaxAge {
		return protein.FormValues{}, false
	}

	fv := protein.FormValues{
		Age:           age,
		HeightUnit:    units.Centimeters,
		Weight:        *weight,
		WeightUnit:    units.Kilograms,
		ActivityLevel: protein.ActivityLevel(*p.ActivityLevel),
		Goal:          protein.Goal(*p.Goal),
	}
	if p.Sex != nil {
		fv.Gender = protein.Gender(*p.Sex)
	}
	if p.HeightCM != nil {
		fv.HeightCm = *p.HeightCM
	}
	return fv, true
}

// populateComputed fills p.Computed from the profile. No-ops when the profile
// is incomplete or the calculator rejects it.
func populateComputed(p *proteinProfile, latestWeightKG *float64, now time.Time) {
	fv, ok := profileFormValues(p, latestWeightKG, now)
	if !ok {
		return
	}
	if result, err := protein.ProcessProteinCalculation(&fv); err == nil {
		p.Computed = &result
	}
}

// latestWeightKG returns the user's most recent weigh-in, or nil if none.
func (h *Handler) latestWeightKG(c *gin.Context, userID int) *float64 {
	var w float64
	err := h.db.QueryRow(c,
		"SELECT weight_kg FROM weight_log WHERE user_id = $1 ORDER BY date DESC LIMIT 1",
		userID).Scan(&w)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			h.logger.Error().Err(err).Str("func", "latestWeightKG").Int("user_id", userID).Msg("weight lookup failed")
		}
		return nil
	}
	return &w
}

// loadProfile fetches the profile row and fills in the computed result.
func (h *Handler) loadProfile(c *gin.Context, userID int) (proteinProfile, error) {
	p, err := queryOne[proteinProfile](h, c,
		"SELECT * FROM protein_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		return p, err
	}
	populateComputed(&p, h.latestWeightKG(c, userID), time.Now())
	return p, nil
}

// getProfile returns the protein profile for the authenticated user.
// GET /api/protein/profile.
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.loadProfile(c, c.GetInt("user_id"))
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

// validateProfilePatch checks every provided field. Returns an error message
// or "" when the body is valid.
func validateProfilePatch(body *patchProfileRequest) string {
	if body.Sex != nil && !validSexes[*body.Sex] {
		return "sex must be one of: male, female"
	}
	if body.DateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *body.DateOfBirth); err != nil {
			return "invalid date_of_birth, expected YYYY-MM-DD"
		}
	}
	if body.HeightCM != nil && (*body.HeightCM <= 0 || *body.HeightCM > 300) {
		return "height_cm must be between 0 and 300"
	}
	if body.WeightKG != nil && (*body.WeightKG <= 0 || *body.WeightKG > 700) {
		return "weight_kg must be between 0 and 700"
	}
	if body.ActivityLevel != nil && !protein.ActivityLevel(*body.ActivityLevel).Valid() {
		return "activity_level must be one of: " + joinValues(protein.ActivityLevels())
	}
	if body.Goal != nil && !protein.Goal(*body.Goal).Valid() {
		return "goal must be one of: " + joinValues(protein.Goals())
	}
	if body.Units != nil && !validUnits[*body.Units] {
		return "units must be one of: metric, imperial"
	}
	if body.MealsPerDay != nil && (*body.MealsPerDay < 3 || *body.MealsPerDay > 5) {
		return "meals_per_day must be between 3 and 5"
	}
	if body.ProteinTarget != nil && *body.ProteinTarget < 0 {
		return "protein_target_g must not be negative"
	}
	return ""
}

// patchProfile updates only the provided profile fields.
// PATCH /api/protein/profile. When target_auto is true after the update and
// the profile is complete, protein_target_g is overwritten with the computed
// daily target.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfilePatch(&body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	// Build SET clause dynamically; only update fields the client sent.
	fields := []struct {
		column string
		value  any
		set    bool
	}{
		{"sex", body.Sex, body.Sex != nil},
		{"date_of_birth", body.DateOfBirth, body.DateOfBirth != nil},
		{"height_cm", body.HeightCM, body.HeightCM != nil},
		{"weight_kg", body.WeightKG, body.WeightKG != nil},
		{"activity_level", body.ActivityLevel, body.ActivityLevel != nil},
		{"goal", body.Goal, body.Goal != nil},
		{"units", body.Units, body.Units != nil},
		{"meals_per_day", body.MealsPerDay, body.MealsPerDay != nil},
		{"protein_target_g", body.ProteinTarget, body.ProteinTarget != nil},
		{"target_auto", body.TargetAuto, body.TargetAuto != nil},
	}
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}
	for _, f := range fields {
		if !f.set {
			continue
		}
		setClauses = append(setClauses, f.column+" = @"+f.column)
		args[f.column] = f.value
	}
	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	query := "UPDATE protein_profiles SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"
	p, err := queryOne[proteinProfile](h, c, query, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	p = h.applyAutoTarget(c, p)

	c.JSON(http.StatusOK, p)
}

// applyAutoTarget computes the profile's result and, when target_auto is on and
// the stored target is stale, persists the computed daily grams as
// protein_target_g. Failures to persist are logged and the original row kept.
func (h *Handler) applyAutoTarget(c *gin.Context, p proteinProfile) proteinProfile {
	populateComputed(&p, h.latestWeightKG(c, p.UserID), time.Now())
	if !p.TargetAuto || p.Computed == nil || p.Computed.DailyProteinGrams == p.ProteinTargetG {
		return p
	}

	updated, err := queryOne[proteinProfile](h, c,
		"UPDATE protein_profiles SET protein_target_g = @target WHERE user_id = @userID RETURNING *",
		pgx.NamedArgs{"target": p.Computed.DailyProteinGrams, "userID": p.UserID})
	if err != nil {
		h.logger.Error().Err(err).Str("func", "applyAutoTarget").Int("user_id", p.UserID).Msg("auto target update failed")
		return p
	}
	updated.Computed = p.Computed
	return updated
}
