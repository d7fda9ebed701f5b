package server

import (
	"context"
	"net/http"

	"wearbmi/internal/handlers"
	applog "wearbmi/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/api/measurement", handlers.Measurement)
	mux.HandleFunc("/api/preferences/units", handlers.ToggleUnits)
	mux.HandleFunc("/api/preferences/theme", handlers.ToggleTheme)
	mux.HandleFunc("/api/calculate", handlers.Calculate)
	mux.HandleFunc("/api/records", handlers.Records)
	mux.HandleFunc("/api/analysis", handlers.Analysis)
	mux.HandleFunc("/api/diet-tips", handlers.DietTips)
	mux.HandleFunc("/api/meal-plan", handlers.MealPlan)
	mux.HandleFunc("/api/chat", handlers.Chat)
	mux.HandleFunc("/api/chat/questions", handlers.ChatQuestions)
	applog.Debug(context.Background(), "api routes registered")
	return mux
}
