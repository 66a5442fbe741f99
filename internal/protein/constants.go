package protein

const (
	// AbsoluteMinPerKg is the RDA floor; no recommendation goes below it.
	AbsoluteMinPerKg = 0.8
	// RecommendedMaxPerKg caps the upper end of a recommended range.
	RecommendedMaxPerKg = 2.2
	// SafeUpperLimitPerKg is the intake above which we warn about excess.
	SafeUpperLimitPerKg = 3.5

	CaloriesPerGram      = 4
	DefaultLeanMassPerKg = 2.2
	MaxBodyFatPercentage = 70

	MinAge = 1
	MaxAge = 120

	// minRangeBonusShare is the share of a goal's additive bonus applied to
	// the lower bound of a range.
	minRangeBonusShare = 0.5
)

// requirements is the per-activity-level protein table in g/kg.
//
//nolint:gochecknoglobals // read-only lookup table
var requirements = map[ActivityLevel]Requirement{
	Sedentary:        {MinPerKg: 0.7, MaxPerKg: 1.0, OptimalPerKg: 0.8},
	LightlyActive:    {MinPerKg: 0.9, MaxPerKg: 1.3, OptimalPerKg: 1.1},
	ModeratelyActive: {MinPerKg: 1.2, MaxPerKg: 1.7, OptimalPerKg: 1.4},
	VeryActive:       {MinPerKg: 1.4, MaxPerKg: 2.0, OptimalPerKg: 1.7},
	ExtremelyActive:  {MinPerKg: 1.7, MaxPerKg: 2.2, OptimalPerKg: 2.0},
}

//nolint:gochecknoglobals // read-only lookup table
var goalAdjustments = map[Goal]GoalAdjustment{
	WeightLoss:          {Multiplier: 1.2, AdditionalPerKg: 0.2},
	MuscleGain:          {Multiplier: 1.3, AdditionalPerKg: 0.3},
	Maintain:            {Multiplier: 1.0, AdditionalPerKg: 0},
	AthleticPerformance: {Multiplier: 1.25, AdditionalPerKg: 0.2},
	GeneralHealth:       {Multiplier: 1.0, AdditionalPerKg: 0.1},
}

// ageBands must stay ordered and contiguous over [MinAge, MaxAge].
//
//nolint:gochecknoglobals // read-only lookup table
var ageBands = []AgeBand{
	{MinAge: 1, MaxAge: 40, Multiplier: 1.0},
	{MinAge: 41, MaxAge: 65, Multiplier: 1.1},
	{MinAge: 66, MaxAge: MaxAge, Multiplier: 1.2},
}

// ActivityLevels lists the valid activity levels, least to most active.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive}
}

// Goals lists the valid goals.
func Goals() []Goal {
	return []Goal{WeightLoss, MuscleGain, Maintain, AthleticPerformance, GeneralHealth}
}

// Valid reports whether l is a known activity level.
func (l ActivityLevel) Valid() bool {
	_, ok := requirements[l]
	return ok
}

// Valid reports whether g is a known goal.
func (g Goal) Valid() bool {
	_, ok := goalAdjustments[g]
	return ok
}
