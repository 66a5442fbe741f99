// Package units converts body measurements entered in imperial or metric units
// into the metric canonical units the calculators work in.
package units

import (
	"fmt"
	"strings"
)

// WeightUnit tags a body weight value.
type WeightUnit string

// HeightUnit tags a body height value.
type HeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"

	Centimeters HeightUnit = "cm"
	FeetInches  HeightUnit = "ft_in"
)

const (
	// KgPerLb is the exact international avoirdupois pound.
	KgPerLb       = 0.45359237
	CmPerInch     = 2.54
	InchesPerFoot = 12
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownUnit is returned for a unit tag that is not recognized.
var ErrUnknownUnit = constError("unknown unit")

// normalize lowercases and trims a unit tag. An empty tag means metric.
func normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// WeightToKg converts a weight in the given unit to kilograms.
// Accepts "kg", "lb" and "lbs" case-insensitively; an empty unit is kilograms.
func WeightToKg(value float64, unit WeightUnit) (float64, error) {
	switch normalize(string(unit)) {
	case "", "kg", "kgs":
		return value, nil
	case "lb", "lbs":
		return value * KgPerLb, nil
	default:
		return 0, fmt.Errorf("%w %q for weight", ErrUnknownUnit, unit)
	}
}

// KgToLb converts kilograms to pounds.
func KgToLb(kg float64) float64 {
	return kg / KgPerLb
}

// HeightToCm converts a height to centimeters. For Centimeters only cm is read;
// for FeetInches only feet and inches are read.
func HeightToCm(cm, feet, inches float64, unit HeightUnit) (float64, error) {
	switch normalize(string(unit)) {
	case "", "cm":
		return cm, nil
	case "ft_in", "ft", "in":
		return (feet*InchesPerFoot + inches) * CmPerInch, nil
	default:
		return 0, fmt.Errorf("%w %q for height", ErrUnknownUnit, unit)
	}
}
