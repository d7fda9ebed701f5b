package analysis

import (
	"math/rand"

	"wearbmi/internal/bmi"
)

// PlaceholderDietTips returns the static tip list for a BMI category, used
// when remote generation yields nothing usable.
func PlaceholderDietTips(category bmi.Category) []string {
	switch category {
	case bmi.Underweight:
		return []string{
			"• Increase calorie intake with healthy foods",
			"• Eat 5-6 small meals daily",
			"• Include protein-rich foods (eggs, lean meat)",
			"• Add healthy fats (nuts, avocados)",
			"• Strength training to build muscle",
		}
	case bmi.Normal:
		return []string{
			"• Maintain balanced diet",
			"• 5 servings of fruits/vegetables daily",
			"• Whole grains and lean proteins",
			"• Stay hydrated (8 glasses water)",
			"• Regular exercise 30 min/day",
		}
	case bmi.Overweight:
		return []string{
			"• Reduce portion sizes by 20%",
			"• Limit processed foods and sugars",
			"• Increase vegetables and fiber",
			"• 150 min moderate exercise/week",
			"• Track daily calorie intake",
		}
	default:
		return []string{
			"• Consult healthcare provider",
			"• Create calorie deficit (500-1000/day)",
			"• Focus on whole, unprocessed foods",
			"• 200+ min exercise per week",
			"• Consider professional guidance",
		}
	}
}

// PlaceholderDietTipsForGoal returns the static tip list for a chosen plan.
func PlaceholderDietTipsForGoal(goal DietGoal) []string {
	switch goal {
	case DietWeightLoss:
		return []string{
			"• Create 500-750 calorie deficit daily",
			"• Eat protein with every meal (30g+)",
			"• Fill half plate with vegetables",
			"• Drink water before meals",
			"• Avoid liquid calories",
		}
	case DietWeightGain:
		return []string{
			"• Add 300-500 calories daily",
			"• Eat every 3-4 hours",
			"• Include healthy fats (nuts, avocados)",
			"• Protein at every meal",
			"• Strength training 3x/week",
		}
	case DietMuscleGain:
		return []string{
			"• 1.6-2.2g protein per kg bodyweight",
			"• Progressive strength training",
			"• Eat within 30 min post-workout",
			"• Complex carbs for energy",
			"• 7-9 hours sleep nightly",
		}
	default:
		return []string{
			"• Track calories to maintain weight",
			"• Balanced macronutrients",
			"• Regular exercise routine",
			"• Stay hydrated",
			"• Monitor weight weekly",
		}
	}
}

// PlaceholderMealPlanForGoal returns the static four-slot meal plan for a
// chosen plan.
func PlaceholderMealPlanForGoal(goal MealGoal) []string {
	switch goal {
	case MealWeightLoss:
		return []string{
			"Breakfast: Oatmeal with berries",
			"Lunch: Grilled chicken salad",
			"Dinner: Baked fish with veggies",
			"Snacks: Apple, green tea",
		}
	case MealWeightGain:
		return []string{
			"Breakfast: Scrambled eggs with toast",
			"Lunch: Pasta with meat sauce",
			"Dinner: Beef stir-fry with rice",
			"Snacks: Greek yogurt, almonds",
		}
	case MealMuscleGain:
		return []string{
			"Breakfast: Protein pancakes",
			"Lunch: Chicken breast with quinoa",
			"Dinner: Salmon with sweet potato",
			"Snacks: Protein shake, trail mix",
		}
	case MealQuick:
		return []string{
			"Breakfast: Smoothie bowl",
			"Lunch: Turkey wrap",
			"Dinner: One-pan chicken & veggies",
			"Snacks: Protein bar, banana",
		}
	default:
		return []string{
			"Breakfast: Greek yogurt with berries",
			"Lunch: Quinoa salad with vegetables",
			"Dinner: Grilled fish with brown rice",
			"Snacks: Fresh fruits, nuts",
		}
	}
}

// PlaceholderMealPlan returns a four-slot meal plan for a BMI category. It
// rotates between a few sets so repeated fallbacks do not look frozen.
func PlaceholderMealPlan(category bmi.Category) []string {
	sets := placeholderMealSets(category)
	return sets[rand.Intn(len(sets))]
}

func placeholderMealSets(category bmi.Category) [][]string {
	switch category {
	case bmi.Underweight:
		return [][]string{
			{"Breakfast: Oatmeal with nuts & honey", "Lunch: Grilled chicken with rice", "Dinner: Salmon with sweet potato", "Snacks: Protein smoothie, trail mix"},
			{"Breakfast: Scrambled eggs with toast", "Lunch: Pasta with meat sauce", "Dinner: Beef stir-fry with rice", "Snacks: Greek yogurt, almonds"},
			{"Breakfast: Pancakes with peanut butter", "Lunch: Chicken wrap with avocado", "Dinner: Pork chops with potatoes", "Snacks: Cheese, crackers"},
		}
	case bmi.Normal:
		return [][]string{
			{"Breakfast: Greek yogurt with berries", "Lunch: Quinoa salad with vegetables", "Dinner: Lean protein with vegetables", "Snacks: Fresh fruits, nuts"},
			{"Breakfast: Whole grain toast with eggs", "Lunch: Turkey sandwich with salad", "Dinner: Grilled fish with brown rice", "Snacks: Apple, hummus"},
			{"Breakfast: Smoothie bowl with granola", "Lunch: Chicken Caesar salad", "Dinner: Vegetable stir-fry with tofu", "Snacks: Mixed nuts, banana"},
		}
	case bmi.Overweight:
		return [][]string{
			{"Breakfast: Egg whites with vegetables", "Lunch: Grilled fish with salad", "Dinner: Turkey with steamed veggies", "Snacks: Apple, low-fat yogurt"},
			{"Breakfast: Oatmeal with berries", "Lunch: Chicken breast with quinoa", "Dinner: Baked cod with asparagus", "Snacks: Carrots, cucumber"},
			{"Breakfast: Protein smoothie", "Lunch: Turkey lettuce wraps", "Dinner: Zucchini noodles with marinara", "Snacks: Berries, green tea"},
		}
	default:
		return [][]string{
			{"Breakfast: Protein shake with fiber", "Lunch: Lean protein with vegetables", "Dinner: Baked chicken with greens", "Snacks: Vegetables, water"},
			{"Breakfast: Scrambled eggs (2) with spinach", "Lunch: Grilled chicken salad", "Dinner: Steamed fish with broccoli", "Snacks: Celery sticks"},
			{"Breakfast: Greek yogurt (low-fat)", "Lunch: Turkey breast with salad", "Dinner: Vegetable soup with lean meat", "Snacks: Water, herbal tea"},
		}
	}
}

// SuggestedQuestions returns quick-tap chat prompts tuned to the category.
func SuggestedQuestions(category bmi.Category) []string {
	switch category {
	case bmi.Underweight:
		return []string{
			"How to gain healthy weight?",
			"Best foods for weight gain?",
			"Exercise for muscle building?",
			"How many calories daily?",
			"Protein intake recommendations?",
		}
	case bmi.Normal:
		return []string{
			"How to maintain my BMI?",
			"Best exercises for fitness?",
			"Healthy meal prep tips?",
			"How to build muscle?",
			"Nutrition for active lifestyle?",
		}
	case bmi.Overweight:
		return []string{
			"How to lose weight safely?",
			"Best exercises for weight loss?",
			"Low calorie meal ideas?",
			"How much water daily?",
			"Cardio vs strength training?",
		}
	default:
		return []string{
			"Safe weight loss strategies?",
			"Best exercises to start?",
			"How to create calorie deficit?",
			"Portion control tips?",
			"When to see a doctor?",
		}
	}
}
