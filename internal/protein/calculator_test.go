package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAges = []int{1, 18, 30, 40, 41, 55, 65, 66, 90, 120}
var testWeights = []float64{0.5, 45, 70, 82.5, 150, 250}

func TestGetProteinRequirement_Ordering(t *testing.T) {
	for _, level := range ActivityLevels() {
		t.Run(string(level), func(t *testing.T) {
			req := GetProteinRequirement(level)
			assert.Less(t, req.MinPerKg, req.OptimalPerKg)
			assert.LessOrEqual(t, req.OptimalPerKg, req.MaxPerKg)
		})
	}
}

func TestGetProteinRequirement_UnknownFallsBackToSedentary(t *testing.T) {
	got := GetProteinRequirement("couch_potato")
	assert.Equal(t, GetProteinRequirement(Sedentary), got)
	assert.False(t, ActivityLevel("couch_potato").Valid())
}

func TestGetAgeAdjustment(t *testing.T) {
	tests := []struct {
		age     int
		want    float64
		wantErr bool
	}{
		{age: 1, want: 1.0},
		{age: 40, want: 1.0},
		{age: 41, want: 1.1},
		{age: 65, want: 1.1},
		{age: 66, want: 1.2},
		{age: 120, want: 1.2},
		{age: 0, wantErr: true},
		{age: -3, wantErr: true},
		{age: 121, wantErr: true},
	}

	for _, tt := range tests {
		got, err := GetAgeAdjustment(tt.age)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidAge, "age %d", tt.age)
			assert.EqualError(t, err, "Age must be between 1 and 120 years")
			continue
		}
		require.NoError(t, err, "age %d", tt.age)
		assert.InDelta(t, tt.want, got, 1e-12, "age %d", tt.age)
	}
}

func TestGetAgeAdjustment_NonDecreasing(t *testing.T) {
	prev := 0.0
	for age := MinAge; age <= MaxAge; age++ {
		got, err := GetAgeAdjustment(age)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "age %d", age)
		prev = got
	}
}

func TestAgeBandsContiguous(t *testing.T) {
	require.NotEmpty(t, ageBands)
	assert.Equal(t, MinAge, ageBands[0].MinAge)
	assert.Equal(t, MaxAge, ageBands[len(ageBands)-1].MaxAge)
	for i := 1; i < len(ageBands); i++ {
		assert.Equal(t, ageBands[i-1].MaxAge+1, ageBands[i].MinAge)
	}
}

func TestGetGoalAdjustment(t *testing.T) {
	assert.Equal(t, GoalAdjustment{Multiplier: 1.0, AdditionalPerKg: 0}, GetGoalAdjustment(Maintain))
	assert.Equal(t, GetGoalAdjustment(Maintain), GetGoalAdjustment("bulk_forever"))
	for _, g := range Goals() {
		assert.True(t, g.Valid(), string(g))
		assert.GreaterOrEqual(t, GetGoalAdjustment(g).Multiplier, 1.0)
	}
}

/* ─── CalculateDailyProtein ──────────────────────────────────────────── */

func TestCalculateDailyProtein_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		level  ActivityLevel
		goal   Goal
		age    int
		want   float64
	}{
		{name: "sedentary maintain", weight: 70, level: Sedentary, goal: Maintain, age: 30, want: 56},
		{name: "moderately active maintain", weight: 70, level: ModeratelyActive, goal: Maintain, age: 30, want: 98},
		{name: "extremely active maintain", weight: 75, level: ExtremelyActive, goal: Maintain, age: 28, want: 150},
		// (1.4*1.3 + 0.3) * 1.1 * 80
		{name: "muscle gain older adult", weight: 80, level: ModeratelyActive, goal: MuscleGain, age: 50, want: 186.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateDailyProtein(tt.weight, tt.level, tt.goal, tt.age)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculateDailyProtein_Errors(t *testing.T) {
	_, err := CalculateDailyProtein(0, Sedentary, Maintain, 30)
	require.ErrorIs(t, err, ErrInvalidWeight)
	assert.EqualError(t, err, "Weight must be greater than 0 kg")

	_, err = CalculateDailyProtein(-10, VeryActive, MuscleGain, 30)
	assert.ErrorIs(t, err, ErrInvalidWeight)

	_, err = CalculateDailyProtein(70, Sedentary, Maintain, 121)
	assert.ErrorIs(t, err, ErrInvalidAge)

	_, err = CalculateDailyProtein(70, Sedentary, Maintain, 0)
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestCalculateDailyProtein_NeverBelowFloor(t *testing.T) {
	for _, level := range ActivityLevels() {
		for _, goal := range Goals() {
			for _, age := range testAges {
				for _, w := range testWeights {
					got, err := CalculateDailyProtein(w, level, goal, age)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, got, w*AbsoluteMinPerKg,
						"%s/%s age=%d weight=%.1f", level, goal, age, w)
				}
			}
		}
	}
}

/* ─── CalculateProteinRange ──────────────────────────────────────────── */

func TestCalculateProteinRange(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		level  ActivityLevel
		goal   Goal
		age    int
		want   Range
	}{
		{name: "plain table bounds", weight: 70, level: ModeratelyActive, goal: Maintain, age: 30, want: Range{Min: 84, Max: 119}},
		{name: "min floored at RDA", weight: 70, level: Sedentary, goal: Maintain, age: 30, want: Range{Min: 56, Max: 70}},
		// min gets half the bonus: 0.7*1.2+0.1; max gets all of it: 1.0*1.2+0.2
		{name: "half bonus on min", weight: 100, level: Sedentary, goal: WeightLoss, age: 30, want: Range{Min: 94, Max: 140}},
		{name: "max capped", weight: 100, level: ExtremelyActive, goal: MuscleGain, age: 30, want: Range{Min: 220, Max: 220}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateProteinRange(tt.weight, tt.level, tt.goal, tt.age)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateProteinRange_Errors(t *testing.T) {
	_, err := CalculateProteinRange(0, Sedentary, Maintain, 30)
	assert.ErrorIs(t, err, ErrInvalidWeight)

	_, err = CalculateProteinRange(70, Sedentary, Maintain, 200)
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestCalculateProteinRange_MaxNotBelowMin(t *testing.T) {
	for _, level := range ActivityLevels() {
		for _, goal := range Goals() {
			for _, age := range testAges {
				for _, w := range testWeights {
					got, err := CalculateProteinRange(w, level, goal, age)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, got.Max, got.Min, "%s/%s age=%d weight=%.1f", level, goal, age, w)
				}
			}
		}
	}
}

/* ─── Per meal, lean mass, recommendation ────────────────────────────── */

func TestCalculateProteinPerMeal(t *testing.T) {
	got, err := CalculateProteinPerMeal(100)
	require.NoError(t, err)
	assert.Equal(t, MealBreakdown{ThreeMeals: 33, FourMeals: 25, FiveMeals: 20}, got)

	// 18.67, 14, 11.2: rounded independently, 3*19 != 56
	got, err = CalculateProteinPerMeal(56)
	require.NoError(t, err)
	assert.Equal(t, MealBreakdown{ThreeMeals: 19, FourMeals: 14, FiveMeals: 11}, got)

	_, err = CalculateProteinPerMeal(0)
	assert.ErrorIs(t, err, ErrInvalidDailyProtein)
	_, err = CalculateProteinPerMeal(-1)
	assert.ErrorIs(t, err, ErrInvalidDailyProtein)
}

func TestCalculateProteinPerMeal_Ordering(t *testing.T) {
	for _, p := range []float64{0.1, 1, 7, 56, 98, 150, 333.3, 1000} {
		got, err := CalculateProteinPerMeal(p)
		require.NoError(t, err)
		assert.LessOrEqual(t, got.FiveMeals, got.FourMeals, "p=%v", p)
		assert.LessOrEqual(t, got.FourMeals, got.ThreeMeals, "p=%v", p)
	}
}

func TestCalculateProteinFromLeanMass(t *testing.T) {
	got, err := CalculateProteinFromLeanMass(80, 20, 2.2)
	require.NoError(t, err)
	assert.InDelta(t, 140.8, got, 1e-9)

	got, err = CalculateProteinFromLeanMass(80, 0, DefaultLeanMassPerKg)
	require.NoError(t, err)
	assert.InDelta(t, 176.0, got, 1e-9)

	tests := []struct {
		name    string
		weight  float64
		bodyFat float64
		rate    float64
		wantErr error
	}{
		{name: "zero weight", weight: 0, bodyFat: 20, rate: 2.2, wantErr: ErrInvalidWeight},
		{name: "negative body fat", weight: 80, bodyFat: -1, rate: 2.2, wantErr: ErrInvalidBodyFat},
		{name: "body fat above 70", weight: 80, bodyFat: 70.5, rate: 2.2, wantErr: ErrInvalidBodyFat},
		{name: "zero rate", weight: 80, bodyFat: 20, rate: 0, wantErr: ErrInvalidLeanMassRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateProteinFromLeanMass(tt.weight, tt.bodyFat, tt.rate)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetProteinRecommendation(t *testing.T) {
	tests := []struct {
		perKg float64
		want  RecommendationLevel
	}{
		{perKg: 0.5, want: LevelLow},
		{perKg: 0.79, want: LevelLow},
		{perKg: 0.8, want: LevelOptimal},
		{perKg: 1.6, want: LevelOptimal},
		{perKg: 2.2, want: LevelOptimal},
		{perKg: 2.3, want: LevelHigh},
		{perKg: 3.5, want: LevelHigh},
		{perKg: 3.6, want: LevelVeryHigh},
	}

	for _, tt := range tests {
		got := GetProteinRecommendation(tt.perKg)
		assert.Equal(t, tt.want, got.Level, "perKg=%v", tt.perKg)
		assert.NotEmpty(t, got.Message)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, got.Color)
	}
}
