// Package handlers exposes the HTTP API of the BMI service. Handlers are
// thin: they resolve the per-client tracker from the session, translate
// JSON in and out, and map domain errors to status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	applog "wearbmi/internal/log"
	"wearbmi/internal/tracker"
)

const sessionClientIDKey = "client:id"

var (
	sessionManager *scs.SessionManager
	registry       *tracker.Registry
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, reg *tracker.Registry) {
	sessionManager = sm
	registry = reg
}

// clientTracker resolves the calling client's tracker, minting a session
// client ID on first contact.
func clientTracker(r *http.Request) *tracker.Tracker {
	ctx := r.Context()
	clientID := sessionManager.GetString(ctx, sessionClientIDKey)
	if clientID == "" {
		clientID = uuid.NewString()
		sessionManager.Put(ctx, sessionClientIDKey, clientID)
		applog.Debug(ctx, "minted new client id", "clientID", clientID)
	}
	return registry.Acquire(clientID)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(r.Context(), "failed to encode response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		applog.Debug(r.Context(), "rejected malformed request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// writeTrackerError maps tracker errors to HTTP status codes.
func writeTrackerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tracker.ErrBusy):
		http.Error(w, "generation already in progress", http.StatusConflict)
	case errors.Is(err, tracker.ErrNoResult):
		http.Error(w, "no BMI result calculated yet", http.StatusBadRequest)
	case errors.Is(err, tracker.ErrEmptyMessage):
		http.Error(w, "message must not be empty", http.StatusBadRequest)
	default:
		applog.Error(r.Context(), "request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
