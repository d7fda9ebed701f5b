package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wearbmi/internal/bmi"
	"wearbmi/internal/handlers"
	"wearbmi/internal/store"
	"wearbmi/internal/tracker"
)

type staticGenerator struct{}

func (staticGenerator) FetchAnalysis(context.Context, float64, bmi.Category, float64, float64) (string, error) {
	return "analysis text", nil
}

func (staticGenerator) FetchDietTips(context.Context, float64, bmi.Category, string) ([]string, error) {
	return []string{"tip a", "tip b"}, nil
}

func (staticGenerator) FetchMealPlan(context.Context, float64, bmi.Category, string) ([]string, error) {
	return []string{"Breakfast: oats", "Lunch: salad", "Dinner: fish", "Snacks: fruit"}, nil
}

func (staticGenerator) Chat(context.Context, string, float64, bmi.Category) (string, error) {
	return "a short answer", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := Config{
		Addr:     ":8080",
		Session:  SessionConfig{CookieSecure: true},
		Registry: tracker.NewRegistry(staticGenerator{}, store.NewMemory()),
	}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	t.Cleanup(func() {
		handlers.Configure(nil, nil)
	})
	return srv
}

func TestNewAppliesSessionDefaults(t *testing.T) {
	srv := newTestServer(t)

	if srv.httpServer.Addr != ":8080" {
		t.Fatalf("expected server addr :8080, got %q", srv.httpServer.Addr)
	}
	if srv.httpServer.Handler == nil {
		t.Fatal("expected handler to be configured")
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
	srv.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from calculate, got %d", rr.Code)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie to be set")
	}
	if cookies[0].Name != "wearbmi_session" {
		t.Fatalf("expected default session cookie name, got %q", cookies[0].Name)
	}
	if !cookies[0].Secure {
		t.Fatal("expected cookie secure flag to be true")
	}
}

func TestSessionCarriesClientStateAcrossRequests(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/measurement", strings.NewReader(`{"height":170,"weight":95}`))
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("measurement update failed with %d: %s", rr.Code, rr.Body.String())
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie after first request")
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/calculate", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("calculate failed with %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		BMI      float64 `json:"bmi"`
		Category string  `json:"category"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode calculate response: %v", err)
	}
	if resp.Category != "Obese" {
		t.Fatalf("category = %q, want Obese from the stored measurement", resp.Category)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/records", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("record save failed with %d: %s", rr.Code, rr.Body.String())
	}
}

func TestServerHandler(t *testing.T) {
	srv := newTestServer(t)

	handler := srv.Handler()
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected /healthz to return 200, got %d", rr.Code)
	}
}
