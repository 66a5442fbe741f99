package protein

import "lg/protein-calc-go-api/internal/units"

// ActivityLevel is a coarse exercise-frequency bucket.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtremelyActive  ActivityLevel = "extremely_active"
)

// Goal is the user's nutrition goal.
type Goal string

const (
	WeightLoss          Goal = "weight_loss"
	MuscleGain          Goal = "muscle_gain"
	Maintain            Goal = "maintain"
	AthleticPerformance Goal = "athletic_performance"
	GeneralHealth       Goal = "general_health"
)

// Gender is collected by the form but does not change the protein formula.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Requirement is the protein need per kg of body weight for an activity level.
type Requirement struct {
	MinPerKg     float64 `json:"min_per_kg"`
	MaxPerKg     float64 `json:"max_per_kg"`
	OptimalPerKg float64 `json:"optimal_per_kg"`
}

// GoalAdjustment scales the per-kg requirement and adds a fixed bonus.
type GoalAdjustment struct {
	Multiplier      float64 `json:"multiplier"`
	AdditionalPerKg float64 `json:"additional_per_kg"`
}

// AgeBand applies Multiplier to ages in [MinAge, MaxAge].
type AgeBand struct {
	MinAge     int
	MaxAge     int
	Multiplier float64
}

// Range is a recommended daily intake window in whole grams.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// MealBreakdown is the daily amount split evenly across 3, 4 and 5 meals.
// Each value is rounded on its own, so n*meal need not equal the daily total.
type MealBreakdown struct {
	ThreeMeals int `json:"three_meals"`
	FourMeals  int `json:"four_meals"`
	FiveMeals  int `json:"five_meals"`
}

// RecommendationLevel classifies an intake in g/kg.
type RecommendationLevel string

const (
	LevelLow      RecommendationLevel = "low"
	LevelOptimal  RecommendationLevel = "optimal"
	LevelHigh     RecommendationLevel = "high"
	LevelVeryHigh RecommendationLevel = "veryHigh"
)

// Recommendation is a qualitative verdict with a display color (hex).
type Recommendation struct {
	Level   RecommendationLevel `json:"level"`
	Message string              `json:"message"`
	Color   string              `json:"color"`
}

// FormValues is the raw calculator input as collected by the form.
// Height is read from HeightCm or from HeightFeet/HeightInches depending on
// HeightUnit.
type FormValues struct {
	Gender        Gender           `json:"gender"`
	Age           int              `json:"age"`
	HeightCm      float64          `json:"height_cm"`
	HeightFeet    float64          `json:"height_feet"`
	HeightInches  float64          `json:"height_inches"`
	HeightUnit    units.HeightUnit `json:"height_unit"`
	Weight        float64          `json:"weight"`
	WeightUnit    units.WeightUnit `json:"weight_unit"`
	ActivityLevel ActivityLevel    `json:"activity_level"`
	Goal          Goal             `json:"goal"`
}

// Result is the full output of ProcessProteinCalculation.
type Result struct {
	DailyProteinGrams int            `json:"daily_protein_grams"`
	MinProteinGrams   int            `json:"min_protein_grams"`
	MaxProteinGrams   int            `json:"max_protein_grams"`
	ProteinPerKg      float64        `json:"protein_per_kg"`
	ProteinPerLb      float64        `json:"protein_per_lb"`
	ProteinPerMeal    MealBreakdown  `json:"protein_per_meal"`
	ProteinCalories   int            `json:"protein_calories"`
	Recommendation    Recommendation `json:"recommendation"`
}
