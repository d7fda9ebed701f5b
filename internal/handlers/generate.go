package handlers

import (
	"net/http"

	"wearbmi/internal/analysis"
)

const (
	sourceAI       = "ai"
	sourceFallback = "fallback"
)

type analysisResponse struct {
	Analysis string `json:"analysis"`
	Source   string `json:"source"`
}

type goalRequest struct {
	Goal string `json:"goal"`
}

type dietTipsResponse struct {
	Tips   []string `json:"tips"`
	Source string   `json:"source"`
}

type mealPlanResponse struct {
	Meals  []string `json:"meals"`
	Source string   `json:"source"`
}

func sourceLabel(fromAI bool) string {
	if fromAI {
		return sourceAI
	}
	return sourceFallback
}

// Analysis generates the health analysis for the last calculated result.
// The response always carries text; source tells whether it came from the
// remote service or the canned generator.
func Analysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	t := clientTracker(r)
	text, fromAI, err := t.GenerateAnalysis(r.Context())
	if err != nil {
		writeTrackerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, analysisResponse{
		Analysis: text,
		Source:   sourceLabel(fromAI),
	})
}

// DietTips generates diet tips, optionally narrowed to a plan goal.
func DietTips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	goal, ok := analysis.ParseDietGoal(req.Goal)
	if !ok {
		http.Error(w, "unknown diet goal", http.StatusBadRequest)
		return
	}

	t := clientTracker(r)
	tips, fromAI, err := t.GenerateDietTips(r.Context(), goal)
	if err != nil {
		writeTrackerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dietTipsResponse{
		Tips:   tips,
		Source: sourceLabel(fromAI),
	})
}

// MealPlan generates a four-slot daily meal plan.
func MealPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	goal, ok := analysis.ParseMealGoal(req.Goal)
	if !ok {
		http.Error(w, "unknown meal goal", http.StatusBadRequest)
		return
	}

	t := clientTracker(r)
	meals, fromAI, err := t.GenerateMealPlan(r.Context(), goal)
	if err != nil {
		writeTrackerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, mealPlanResponse{
		Meals:  meals,
		Source: sourceLabel(fromAI),
	})
}
