package protein

import (
	"math"

	"github.com/rs/zerolog/log"

	"lg/protein-calc-go-api/internal/units"
)

// ProcessProteinCalculation runs the full calculation for a form submission.
//
// Units are converted to kg/cm first and the converted values are validated
// again. Any error from an inner step is logged and returned unchanged, so
// callers can still match it with errors.Is.
func ProcessProteinCalculation(values *FormValues) (Result, error) {
	if values == nil {
		log.Error().Str("component", "protein").Msg("protein calculation called without form values")
		return Result{}, ErrFormValuesRequired
	}

	result, err := process(values)
	if err != nil {
		log.Error().
			Err(err).
			Str("component", "protein").
			Int("age", values.Age).
			Float64("weight", values.Weight).
			Str("weight_unit", string(values.WeightUnit)).
			Str("activity_level", string(values.ActivityLevel)).
			Str("goal", string(values.Goal)).
			Msg("protein calculation failed")
		return Result{}, err
	}
	return result, nil
}

func process(values *FormValues) (Result, error) {
	heightCm, err := units.HeightToCm(values.HeightCm, values.HeightFeet, values.HeightInches, values.HeightUnit)
	if err != nil {
		return Result{}, err
	}
	weightKg, err := units.WeightToKg(values.Weight, values.WeightUnit)
	if err != nil {
		return Result{}, err
	}

	if err := validateWeight(weightKg); err != nil {
		return Result{}, err
	}
	if values.Age < MinAge || values.Age > MaxAge {
		return Result{}, ErrInvalidAge
	}

	daily, err := CalculateDailyProtein(weightKg, values.ActivityLevel, values.Goal, values.Age)
	if err != nil {
		return Result{}, err
	}
	rng, err := CalculateProteinRange(weightKg, values.ActivityLevel, values.Goal, values.Age)
	if err != nil {
		return Result{}, err
	}

	dailyGrams := math.Round(daily)
	perKg := roundTo(dailyGrams/weightKg, 1)
	perLb := roundTo(dailyGrams/units.KgToLb(weightKg), 2)

	perMeal, err := CalculateProteinPerMeal(dailyGrams)
	if err != nil {
		return Result{}, err
	}

	log.Debug().
		Str("component", "protein").
		Float64("weight_kg", weightKg).
		Float64("height_cm", heightCm).
		Float64("daily_grams", dailyGrams).
		Msg("protein calculation complete")

	return Result{
		DailyProteinGrams: int(dailyGrams),
		MinProteinGrams:   rng.Min,
		MaxProteinGrams:   rng.Max,
		ProteinPerKg:      perKg,
		ProteinPerLb:      perLb,
		ProteinPerMeal:    perMeal,
		ProteinCalories:   int(math.Round(dailyGrams * CaloriesPerGram)),
		Recommendation:    GetProteinRecommendation(perKg),
	}, nil
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
