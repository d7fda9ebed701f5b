package analysis

import "strings"

// DietGoal narrows diet tip generation to a plan the user picked on the
// watch. The empty goal means "use the BMI category".
type DietGoal string

const (
	DietWeightLoss  DietGoal = "Weight Loss"
	DietWeightGain  DietGoal = "Weight Gain"
	DietMuscleGain  DietGoal = "Muscle Gain"
	DietMaintenance DietGoal = "Maintenance"
)

// MealGoal narrows meal plan generation the same way.
type MealGoal string

const (
	MealWeightLoss MealGoal = "Weight Loss"
	MealWeightGain MealGoal = "Weight Gain"
	MealMuscleGain MealGoal = "Muscle Gain"
	MealHealthy    MealGoal = "Healthy Meals"
	MealQuick      MealGoal = "Quick Meals"
)

// ParseDietGoal resolves user input to a known goal. Empty input is valid
// and selects category-based tips; anything else unknown is rejected.
func ParseDietGoal(value string) (DietGoal, bool) {
	switch normalizeGoal(value) {
	case "":
		return "", true
	case "weight loss":
		return DietWeightLoss, true
	case "weight gain":
		return DietWeightGain, true
	case "muscle gain":
		return DietMuscleGain, true
	case "maintenance":
		return DietMaintenance, true
	}
	return "", false
}

// ParseMealGoal resolves user input to a known meal goal.
func ParseMealGoal(value string) (MealGoal, bool) {
	switch normalizeGoal(value) {
	case "":
		return "", true
	case "weight loss":
		return MealWeightLoss, true
	case "weight gain":
		return MealWeightGain, true
	case "muscle gain":
		return MealMuscleGain, true
	case "healthy meals":
		return MealHealthy, true
	case "quick meals":
		return MealQuick, true
	}
	return "", false
}

func normalizeGoal(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
