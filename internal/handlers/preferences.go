package handlers

import (
	"net/http"

	applog "wearbmi/internal/log"
)

type themeResponse struct {
	DarkTheme bool `json:"dark_theme"`
}

// ToggleUnits flips the client between metric and imperial, converting the
// stored measurement in place.
func ToggleUnits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	t := clientTracker(r)
	height, weight, units := t.ToggleUnits()
	applog.Debug(r.Context(), "unit system toggled", "units", units.String())

	writeJSON(w, r, http.StatusOK, measurementResponse{
		Height: height,
		Weight: weight,
		Units:  units.String(),
	})
}

// ToggleTheme flips the client's dark/light preference.
func ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	t := clientTracker(r)
	writeJSON(w, r, http.StatusOK, themeResponse{DarkTheme: t.ToggleTheme()})
}
