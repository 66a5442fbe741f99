package main

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/protein-calc-go-api/internal/protein"
)

// validMeals is the set of allowed values for protein_log_items.meal.
// Reject unknown values with 400 rather than letting the DB return a cryptic 500.
var validMeals = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

// summarizeDay totals the logged items against the target. weightKG may be
// nil, in which case no per-kg intake or recommendation is reported.
func summarizeDay(date string, targetG int, items []proteinLogItem, weightKG *float64) dailyProteinSummary {
	s := dailyProteinSummary{
		Date:    date,
		TargetG: targetG,
		ByMeal:  map[string]float64{},
		Items:   items,
	}
	for _, item := range items {
		s.ConsumedG += item.ProteinG
		s.ByMeal[item.Meal] += item.ProteinG
	}
	s.ConsumedG = round1(s.ConsumedG)
	s.RemainingG = round1(math.Max(float64(targetG)-s.ConsumedG, 0))

	if weightKG != nil && *weightKG > 0 {
		perKg := round1(s.ConsumedG / *weightKG)
		rec := protein.GetProteinRecommendation(perKg)
		s.IntakePerKg = &perKg
		s.Recommendation = &rec
	}
	return s
}

// getDailyProtein returns logged protein for a date against the profile target.
// GET /api/protein/daily?date=YYYY-MM-DD (defaults to today).
func (h *Handler) getDailyProtein(c *gin.Context) {
	userID := c.GetInt("user_id")
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	// Validate before querying; an invalid value silently returns no rows.
	if _, err := time.Parse("2006-01-02", date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	items, err := queryMany[proteinLogItem](h, c,
		`SELECT * FROM protein_log_items
		 WHERE user_id = @userID AND date = @date
		 ORDER BY created_at`,
		pgx.NamedArgs{"userID": userID, "date": date})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch items")
		return
	}
	if items == nil {
		items = []proteinLogItem{}
	}

	p, err := h.loadProfile(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	weight := h.latestWeightKG(c, userID)
	if weight == nil {
		weight = p.WeightKG
	}

	c.JSON(http.StatusOK, summarizeDay(date, p.ProteinTargetG, items, weight))
}

// createProteinLogItem inserts a protein log entry.
// POST /api/protein/log-items. Defaults date to today if omitted.
func (h *Handler) createProteinLogItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createProteinLogItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ItemName == "" {
		apiError(c, http.StatusBadRequest, "item_name is required")
		return
	}
	if !validMeals[body.Meal] {
		apiError(c, http.StatusBadRequest, "meal must be one of: breakfast, lunch, dinner, snack")
		return
	}
	if body.ProteinG == nil || *body.ProteinG < 0 {
		apiError(c, http.StatusBadRequest, "protein_g is required and must not be negative")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	item, err := queryOne[proteinLogItem](h, c,
		`INSERT INTO protein_log_items (user_id, date, item_name, meal, protein_g)
		 VALUES (@userID, @date, @itemName, @meal, @proteinG)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": userID, "date": body.Date, "itemName": body.ItemName,
			"meal": body.Meal, "proteinG": *body.ProteinG,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// deleteProteinLogItem removes a protein log entry. Returns 204 on success.
// DELETE /api/protein/log-items/:id.
func (h *Handler) deleteProteinLogItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := h.db.Exec(c,
		"DELETE FROM protein_log_items WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "item not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// mondayOf returns midnight UTC of the Monday starting t's Mon-Sun week.
func mondayOf(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday()) // 0=Sun
	if weekday == 0 {
		weekday = 7
	}
	d := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// buildWeek fills a 7-day window starting at weekStart from per-day totals.
// Days with no logged items are included with has_data=false.
func buildWeek(weekStart time.Time, rows []weekProteinRow, targetG int) []weekProteinDay {
	byDate := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDate[r.Date.Time.Format("2006-01-02")] = r.ProteinG
	}

	days := make([]weekProteinDay, 7)
	for i := range days {
		date := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		day := weekProteinDay{Date: date, TargetG: targetG}
		if g, ok := byDate[date]; ok {
			day.HasData = true
			day.ProteinG = round1(g)
			day.MetGoal = targetG > 0 && day.ProteinG >= float64(targetG)
		}
		days[i] = day
	}
	return days
}

// getWeekProtein returns per-day protein totals for the Mon-Sun week containing
// week_start. GET /api/protein/week?week_start=YYYY-MM-DD (defaults to this week).
func (h *Handler) getWeekProtein(c *gin.Context) {
	userID := c.GetInt("user_id")

	weekStart := mondayOf(time.Now())
	if s := c.Query("week_start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid week_start, expected YYYY-MM-DD")
			return
		}
		weekStart = mondayOf(t)
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	p, err := h.loadProfile(c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	rows, err := queryMany[weekProteinRow](h, c,
		`SELECT date, SUM(protein_g) AS protein_g
		 FROM protein_log_items
		 WHERE user_id = @userID AND date >= @weekStart AND date <= @weekEnd
		 GROUP BY date`,
		pgx.NamedArgs{
			"userID":    userID,
			"weekStart": weekStart.Format("2006-01-02"),
			"weekEnd":   weekEnd.Format("2006-01-02"),
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch week data")
		return
	}

	c.JSON(http.StatusOK, buildWeek(weekStart, rows, p.ProteinTargetG))
}

// validateLogItemUpdate checks the fields present in an update body.
// Returns an error message, or "" when the body is acceptable.
func validateLogItemUpdate(body *updateProteinLogItemRequest) string {
	if body.Date != nil {
		if _, err := time.Parse("2006-01-02", *body.Date); err != nil {
			return "invalid date, expected YYYY-MM-DD"
		}
	}
	if body.ItemName != nil && *body.ItemName == "" {
		return "item_name must not be empty"
	}
	if body.Meal != nil && !validMeals[*body.Meal] {
		return "meal must be one of: breakfast, lunch, dinner, snack"
	}
	if body.ProteinG != nil && *body.ProteinG < 0 {
		return "protein_g must not be negative"
	}
	return ""
}

// updateProteinLogItem updates an existing protein log entry.
// PATCH /api/protein/log-items/:id. Uses COALESCE so omitted fields keep their current value.
func (h *Handler) updateProteinLogItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var body updateProteinLogItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateLogItemUpdate(&body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	item, err := queryOne[proteinLogItem](h, c,
		`UPDATE protein_log_items SET
			date = COALESCE(@date, date),
			item_name = COALESCE(@itemName, item_name),
			meal = COALESCE(@meal, meal),
			protein_g = COALESCE(@proteinG, protein_g),
			updated_at = now()
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{
			"id": id, "userID": userID,
			"date": body.Date, "itemName": body.ItemName,
			"meal": body.Meal, "proteinG": body.ProteinG,
		})
	if errors.Is(err, pgx.ErrNoRows) {
		apiError(c, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update item")
		return
	}

	c.JSON(http.StatusOK, item)
}
