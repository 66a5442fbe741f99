package protein

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation errors. The messages are shown to end users as-is.
var (
	ErrInvalidWeight       = constError("Weight must be greater than 0 kg")
	ErrInvalidAge          = constError("Age must be between 1 and 120 years")
	ErrInvalidDailyProtein = constError("Daily protein must be greater than 0")
	ErrInvalidBodyFat      = constError("Body fat percentage must be between 0 and 70")
	ErrInvalidLeanMassRate = constError("Protein per kg of lean mass must be greater than 0")
	ErrFormValuesRequired  = constError("Form values are required")
)
