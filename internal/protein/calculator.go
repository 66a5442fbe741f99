package protein

import (
	"math"

	"github.com/rs/zerolog/log"
)

// GetProteinRequirement returns the g/kg requirement for an activity level.
// An unknown level is logged and treated as Sedentary.
func GetProteinRequirement(level ActivityLevel) Requirement {
	req, ok := requirements[level]
	if !ok {
		log.Warn().
			Str("component", "protein").
			Str("activity_level", string(level)).
			Msg("unknown activity level, falling back to sedentary")
		return requirements[Sedentary]
	}
	return req
}

// GetAgeAdjustment returns the multiplier of the age band containing age.
// Returns ErrInvalidAge outside [MinAge, MaxAge].
func GetAgeAdjustment(age int) (float64, error) {
	if age < MinAge || age > MaxAge {
		return 0, ErrInvalidAge
	}
	for _, band := range ageBands {
		if age >= band.MinAge && age <= band.MaxAge {
			return band.Multiplier, nil
		}
	}
	return 1.0, nil
}

// GetGoalAdjustment returns the adjustment for a goal.
// An unknown goal is logged and treated as Maintain.
func GetGoalAdjustment(goal Goal) GoalAdjustment {
	adj, ok := goalAdjustments[goal]
	if !ok {
		log.Warn().
			Str("component", "protein").
			Str("goal", string(goal)).
			Msg("unknown goal, falling back to maintain")
		return goalAdjustments[Maintain]
	}
	return adj
}

func validateWeight(weightKg float64) error {
	if weightKg <= 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return ErrInvalidWeight
	}
	return nil
}

// CalculateDailyProtein returns the unrounded daily protein target in grams.
//
// The goal adjustment is applied before the age multiplier, and the
// AbsoluteMinPerKg floor is applied last so no goal/age combination can push
// the target below it.
func CalculateDailyProtein(weightKg float64, level ActivityLevel, goal Goal, age int) (float64, error) {
	if err := validateWeight(weightKg); err != nil {
		return 0, err
	}
	ageMultiplier, err := GetAgeAdjustment(age)
	if err != nil {
		return 0, err
	}

	base := GetProteinRequirement(level).OptimalPerKg
	goalAdj := GetGoalAdjustment(goal)

	adjusted := base*goalAdj.Multiplier + goalAdj.AdditionalPerKg
	perKg := adjusted * ageMultiplier

	raw := weightKg * perKg
	floor := weightKg * AbsoluteMinPerKg
	return math.Max(raw, floor), nil
}

// CalculateProteinRange returns the recommended daily window in whole grams.
//
// The lower bound gets only half of the goal's additive bonus while the upper
// bound gets all of it. The upper bound is capped at RecommendedMaxPerKg, both
// bounds are floored at AbsoluteMinPerKg, and the lower bound never exceeds the
// upper one.
func CalculateProteinRange(weightKg float64, level ActivityLevel, goal Goal, age int) (Range, error) {
	if err := validateWeight(weightKg); err != nil {
		return Range{}, err
	}
	ageMultiplier, err := GetAgeAdjustment(age)
	if err != nil {
		return Range{}, err
	}

	req := GetProteinRequirement(level)
	goalAdj := GetGoalAdjustment(goal)

	minPerKg := (req.MinPerKg*goalAdj.Multiplier + goalAdj.AdditionalPerKg*minRangeBonusShare) * ageMultiplier
	maxPerKg := (req.MaxPerKg*goalAdj.Multiplier + goalAdj.AdditionalPerKg) * ageMultiplier
	maxPerKg = math.Min(maxPerKg, RecommendedMaxPerKg)

	minPerKg = math.Max(minPerKg, AbsoluteMinPerKg)
	maxPerKg = math.Max(maxPerKg, AbsoluteMinPerKg)
	minPerKg = math.Min(minPerKg, maxPerKg)

	return Range{
		Min: int(math.Round(weightKg * minPerKg)),
		Max: int(math.Round(weightKg * maxPerKg)),
	}, nil
}

// CalculateProteinPerMeal splits a daily amount across 3, 4 and 5 meals.
func CalculateProteinPerMeal(dailyProtein float64) (MealBreakdown, error) {
	if dailyProtein <= 0 || math.IsNaN(dailyProtein) {
		return MealBreakdown{}, ErrInvalidDailyProtein
	}
	return MealBreakdown{
		ThreeMeals: int(math.Round(dailyProtein / 3)),
		FourMeals:  int(math.Round(dailyProtein / 4)),
		FiveMeals:  int(math.Round(dailyProtein / 5)),
	}, nil
}

// CalculateProteinFromLeanMass returns daily grams based on lean body mass
// instead of total weight. It is independent of the activity/goal pipeline.
func CalculateProteinFromLeanMass(weightKg, bodyFatPercentage, proteinPerKgLeanMass float64) (float64, error) {
	if err := validateWeight(weightKg); err != nil {
		return 0, err
	}
	if bodyFatPercentage < 0 || bodyFatPercentage > MaxBodyFatPercentage || math.IsNaN(bodyFatPercentage) {
		return 0, ErrInvalidBodyFat
	}
	if proteinPerKgLeanMass <= 0 || math.IsNaN(proteinPerKgLeanMass) {
		return 0, ErrInvalidLeanMassRate
	}
	return LeanMass(weightKg, bodyFatPercentage) * proteinPerKgLeanMass, nil
}

// LeanMass returns body weight minus estimated fat mass. Inputs are not validated.
func LeanMass(weightKg, bodyFatPercentage float64) float64 {
	return weightKg * (1 - bodyFatPercentage/100)
}
