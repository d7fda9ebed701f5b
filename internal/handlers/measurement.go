package handlers

import (
	"net/http"

	applog "wearbmi/internal/log"
)

type measurementRequest struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

type measurementResponse struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Units  string  `json:"units"`
}

// Measurement updates the client's height and weight in the active unit
// system.
func Measurement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req measurementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Height <= 0 || req.Weight <= 0 {
		applog.Debug(r.Context(), "rejected non-positive measurement",
			"height", req.Height, "weight", req.Weight)
		http.Error(w, "height and weight must be positive", http.StatusBadRequest)
		return
	}

	t := clientTracker(r)
	t.SetMeasurement(req.Height, req.Weight)

	height, weight, units := t.Measurement()
	writeJSON(w, r, http.StatusOK, measurementResponse{
		Height: height,
		Weight: weight,
		Units:  units.String(),
	})
}
