package handlers

import (
	"net/http"

	"wearbmi/internal/bmi"
	applog "wearbmi/internal/log"
)

type calculateResponse struct {
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Units    string  `json:"units"`
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Range    string  `json:"range"`
	Progress float64 `json:"progress"`
}

// Calculate computes BMI from the client's current measurement and stores
// the result for subsequent generation and record saving.
func Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	t := clientTracker(r)
	res := t.Calculate()
	_, _, units := t.Measurement()
	applog.Debug(r.Context(), "bmi calculated",
		"bmi", res.BMI, "category", res.Category.Label())

	writeJSON(w, r, http.StatusOK, calculateResponse{
		Height:   res.Height,
		Weight:   res.Weight,
		Units:    units.String(),
		BMI:      res.BMI,
		Category: res.Category.Label(),
		Range:    res.Category.Range(),
		Progress: bmi.ProgressPercentage(res.BMI),
	})
}
