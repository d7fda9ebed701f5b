package ai

import (
	"fmt"

	"wearbmi/internal/bmi"
)

func analysisPrompt(value float64, category bmi.Category, heightCm, weightKg float64) string {
	return fmt.Sprintf(`Provide a brief, personalized health analysis for a smartwatch display.

User Details:
- BMI: %.1f
- Category: %s
- Height: %.1fcm
- Weight: %.1fkg

Please include:
1. Brief health assessment (2-3 sentences)
2. Top 3-4 actionable recommendations
3. Important note about BMI limitations

Keep the response concise and suitable for a small smartwatch screen.
Use emojis for visual appeal: 📊 💪 🎯 ⚠️`, value, category.Label(), heightCm, weightKg)
}

func dietTipsPrompt(value float64, category bmi.Category, goal string) string {
	if goal == "" {
		return fmt.Sprintf("Give 5 diet tips for %s BMI. Each tip max 50 chars. Format: tip1, tip2, tip3, tip4, tip5", category.Label())
	}
	return fmt.Sprintf("Give 5 diet tips for %s plan. BMI: %.1f (%s). Each tip max 50 chars. Format: tip1, tip2, tip3, tip4, tip5", goal, value, category.Label())
}

func mealPlanPrompt(value float64, category bmi.Category, goal string) string {
	if goal == "" {
		return fmt.Sprintf("Give 4 meals for %s BMI. Format: Breakfast meal, Lunch meal, Dinner meal, Snacks. Max 40 chars each.", category.Label())
	}
	return fmt.Sprintf("Give 4 meals for %s plan. BMI: %.1f (%s). Format: Breakfast meal, Lunch meal, Dinner meal, Snacks. Max 40 chars each.", goal, value, category.Label())
}

func chatPrompt(message string, value float64, category bmi.Category) string {
	return fmt.Sprintf("You are a health assistant. User BMI: %.1f (%s). Question: %s. Give a helpful answer in max 100 characters.", value, category.Label(), message)
}
