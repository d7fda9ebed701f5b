package handlers

import (
	"net/http"

	applog "wearbmi/internal/log"
	"wearbmi/models"
)

type recordsResponse struct {
	Records []models.Record `json:"records"`
}

// Records saves the last calculated result (POST) or lists the client's
// measurement history (GET).
func Records(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		saveRecord(w, r)
	case http.MethodGet:
		listRecords(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func saveRecord(w http.ResponseWriter, r *http.Request) {
	t := clientTracker(r)
	rec, err := t.SaveRecord(r.Context())
	if err != nil {
		writeTrackerError(w, r, err)
		return
	}

	applog.Debug(r.Context(), "record saved", "bmi", rec.BMI, "category", rec.Category)
	writeJSON(w, r, http.StatusCreated, rec)
}

func listRecords(w http.ResponseWriter, r *http.Request) {
	t := clientTracker(r)
	records, err := t.Records(r.Context())
	if err != nil {
		writeTrackerError(w, r, err)
		return
	}

	if records == nil {
		records = []models.Record{}
	}
	writeJSON(w, r, http.StatusOK, recordsResponse{Records: records})
}
