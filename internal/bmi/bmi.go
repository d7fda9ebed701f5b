// Package bmi holds the pure measurement math: the BMI formula, imperial
// conversion, category classification and the gauge mapping used by the
// watch's circular progress indicator.
package bmi

// Conversion constants shared with the unit toggle. They must match the
// values used on the watch so toggling units round-trips cleanly.
const (
	CentimetersPerInch = 2.54
	KilogramsPerPound  = 0.453592
)

// UnitSystem selects how measurements are entered and displayed. Values are
// always converted to metric before calculation.
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

func (u UnitSystem) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// Calculate returns weight/(height in meters)^2. Inputs are not validated;
// a zero height yields +Inf or NaN rather than an error.
func Calculate(heightCm, weightKg float64) float64 {
	h := heightCm / 100
	return weightKg / (h * h)
}

// CalculateImperial converts inches and pounds to metric and delegates to
// Calculate.
func CalculateImperial(heightIn, weightLb float64) float64 {
	return Calculate(heightIn*CentimetersPerInch, weightLb*KilogramsPerPound)
}

// Classify maps a BMI value onto a Category. Breakpoints are lower-inclusive
// on the upper side: 18.5 classifies as Normal, 25.0 as Overweight, 30.0 as
// Obese.
func Classify(value float64) Category {
	switch {
	case value < 18.5:
		return Underweight
	case value < 25.0:
		return Normal
	case value < 30.0:
		return Overweight
	default:
		return Obese
	}
}

// ProgressPercentage maps a BMI value onto the 0-100% circular gauge, where
// 15 maps to 0 and 40 maps to 100.
func ProgressPercentage(value float64) float64 {
	p := (value - 15) / 25 * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
