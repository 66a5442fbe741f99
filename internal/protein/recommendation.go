package protein

// Display colors for recommendation levels.
const (
	colorLow      = "#f59e0b"
	colorOptimal  = "#10b981"
	colorHigh     = "#3b82f6"
	colorVeryHigh = "#ef4444"
)

//nolint:gochecknoglobals // read-only lookup table
var recommendations = map[RecommendationLevel]Recommendation{
	LevelLow: {
		Level:   LevelLow,
		Message: "Your protein intake is below the recommended minimum. Consider adding protein-rich foods to your diet.",
		Color:   colorLow,
	},
	LevelOptimal: {
		Level:   LevelOptimal,
		Message: "Your protein intake is within the optimal range for your activity level and goals.",
		Color:   colorOptimal,
	},
	LevelHigh: {
		Level:   LevelHigh,
		Message: "Your protein intake is above the typical recommendation. This can suit intense training but is more than most people need.",
		Color:   colorHigh,
	},
	LevelVeryHigh: {
		Level:   LevelVeryHigh,
		Message: "Your protein intake is very high. Consider consulting a healthcare professional before sustaining this level.",
		Color:   colorVeryHigh,
	},
}

// GetProteinRecommendation classifies an intake in g/kg. The very-high check
// runs before the high check.
func GetProteinRecommendation(proteinPerKg float64) Recommendation {
	switch {
	case proteinPerKg < AbsoluteMinPerKg:
		return recommendations[LevelLow]
	case proteinPerKg > SafeUpperLimitPerKg:
		return recommendations[LevelVeryHigh]
	case proteinPerKg > RecommendedMaxPerKg:
		return recommendations[LevelHigh]
	default:
		return recommendations[LevelOptimal]
	}
}
