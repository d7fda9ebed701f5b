package bmi

// Category is the closed set of BMI classifications.
type Category int

const (
	Underweight Category = iota
	Normal
	Overweight
	Obese
)

// Label returns the display name shown on the watch face.
func (c Category) Label() string {
	switch c {
	case Underweight:
		return "Underweight"
	case Normal:
		return "Normal"
	case Overweight:
		return "Overweight"
	case Obese:
		return "Obese"
	}
	return "Unknown"
}

// Range returns the human-readable BMI interval for the category.
func (c Category) Range() string {
	switch c {
	case Underweight:
		return "< 18.5"
	case Normal:
		return "18.5 - 24.9"
	case Overweight:
		return "25.0 - 29.9"
	case Obese:
		return "≥ 30.0"
	}
	return ""
}

func (c Category) String() string {
	return c.Label()
}
