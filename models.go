package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"lg/protein-calc-go-api/internal/protein"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns into DateOnly. NULL zeroes the time so *DateOnly fields can be nil.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// proteinProfile maps to protein_profiles. One row per user; body fields are
// nullable so a freshly created account still loads.
type proteinProfile struct {
	UserID         int       `json:"user_id"          db:"user_id"`
	Sex            *string   `json:"sex"              db:"sex"`
	DateOfBirth    *DateOnly `json:"date_of_birth"    db:"date_of_birth"`
	HeightCM       *float64  `json:"height_cm"        db:"height_cm"`
	WeightKG       *float64  `json:"weight_kg"        db:"weight_kg"`
	ActivityLevel  *string   `json:"activity_level"   db:"activity_level"`
	Goal           *string   `json:"goal"             db:"goal"`
	Units          string    `json:"units"            db:"units"`
	MealsPerDay    int       `json:"meals_per_day"    db:"meals_per_day"`
	ProteinTargetG int       `json:"protein_target_g" db:"protein_target_g"`
	TargetAuto     bool      `json:"target_auto"      db:"target_auto"`

	// Computed from the profile (and latest weigh-in); not stored.
	Computed *protein.Result `json:"computed,omitempty" db:"-"`
}

// proteinLogItem maps to protein_log_items.
type proteinLogItem struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	Date      DateOnly   `json:"date"       db:"date"`
	ItemName  string     `json:"item_name"  db:"item_name"`
	Meal      string     `json:"meal"       db:"meal"`
	ProteinG  float64    `json:"protein_g"  db:"protein_g"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// weightEntry maps to weight_log. One entry per user per day.
type weightEntry struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	Date      DateOnly   `json:"date"       db:"date"`
	WeightKG  float64    `json:"weight_kg"  db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// savedCalculation maps to protein_calculations. Inputs and Result are jsonb.
type savedCalculation struct {
	ID        uuid.UUID          `json:"id"         db:"id"`
	UserID    int                `json:"user_id"    db:"user_id"`
	Inputs    protein.FormValues `json:"inputs"     db:"inputs"`
	Result    protein.Result     `json:"result"     db:"result"`
	CreatedAt *time.Time         `json:"created_at" db:"created_at"`
}

/* ─── Request / response shapes ──────────────────────────────────────── */

// leanMassRequest is the body for POST /api/protein/lean-mass.
// ProteinPerKgLeanMass defaults to protein.DefaultLeanMassPerKg.
type leanMassRequest struct {
	WeightKG             float64  `json:"weight_kg"`
	BodyFatPercentage    float64  `json:"body_fat_percentage"`
	ProteinPerKgLeanMass *float64 `json:"protein_per_kg_lean_mass"`
}

type leanMassResponse struct {
	LeanMassKG           float64 `json:"lean_mass_kg"`
	ProteinPerKgLeanMass float64 `json:"protein_per_kg_lean_mass"`
	ProteinGrams         float64 `json:"protein_grams"`
}

// patchProfileRequest is the body for PATCH /api/protein/profile. Only non-nil
// fields get written.
type patchProfileRequest struct {
	Sex           *string  `json:"sex"`
	DateOfBirth   *string  `json:"date_of_birth"` // YYYY-MM-DD
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
	Units         *string  `json:"units"`
	MealsPerDay   *int     `json:"meals_per_day"`
	ProteinTarget *int     `json:"protein_target_g"`
	TargetAuto    *bool    `json:"target_auto"`
}

// createProteinLogItemRequest is the body for POST /api/protein/log-items.
type createProteinLogItemRequest struct {
	Date     string   `json:"date"`
	ItemName string   `json:"item_name"`
	Meal     string   `json:"meal"`
	ProteinG *float64 `json:"protein_g"`
}

// updateProteinLogItemRequest is the body for PATCH /api/protein/log-items/:id.
// Omitted fields keep their stored value.
type updateProteinLogItemRequest struct {
	Date     *string  `json:"date"`
	ItemName *string  `json:"item_name"`
	Meal     *string  `json:"meal"`
	ProteinG *float64 `json:"protein_g"`
}

// weekProteinRow is one GROUP BY date row from protein_log_items.
type weekProteinRow struct {
	Date     DateOnly `db:"date"`
	ProteinG float64  `db:"protein_g"`
}

// weekProteinDay is one day in the GET /api/protein/week response.
type weekProteinDay struct {
	Date     string  `json:"date"`
	ProteinG float64 `json:"protein_g"`
	TargetG  int     `json:"target_g"`
	MetGoal  bool    `json:"met_goal"`
	HasData  bool    `json:"has_data"`
}

// dailyProteinSummary is the response for GET /api/protein/daily.
type dailyProteinSummary struct {
	Date           string                  `json:"date"`
	TargetG        int                     `json:"target_g"`
	ConsumedG      float64                 `json:"consumed_g"`
	RemainingG     float64                 `json:"remaining_g"`
	ByMeal         map[string]float64      `json:"by_meal"`
	IntakePerKg    *float64                `json:"intake_per_kg,omitempty"`
	Recommendation *protein.Recommendation `json:"recommendation,omitempty"`
	Items          []proteinLogItem        `json:"items"`
}
