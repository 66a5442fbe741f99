package main

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TestValidateDateRange verifies the shared start/end checks.
func TestValidateDateRange(t *testing.T) {
	cases := []struct {
		start, end, want string
	}{
		{"2026-06-01", "2026-06-30", ""},
		{"2026-06-01", "2026-06-01", ""},
		{"", "2026-06-30", "start and end query params are required"},
		{"06/01/2026", "2026-06-30", "invalid start, expected YYYY-MM-DD"},
		{"2026-06-01", "june", "invalid end, expected YYYY-MM-DD"},
		{"2026-07-01", "2026-06-30", "start must not be after end"},
	}
	for _, tc := range cases {
		if got := validateDateRange(tc.start, tc.end); got != tc.want {
			t.Errorf("validateDateRange(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}

// TestUpsertWeightEntry_Validation verifies bad bodies are rejected before any
// database access.
func TestUpsertWeightEntry_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zerolog.Nop()}
	router := gin.New()
	router.POST("/api/weight-log", h.upsertWeightEntry)

	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"zero weight", `{"date":"2026-06-15","weight_kg":0}`, "weight_kg must be between 0 and 700"},
		{"too heavy", `{"date":"2026-06-15","weight_kg":701}`, "weight_kg must be between 0 and 700"},
		{"bad date", `{"date":"15-06-2026","weight_kg":80}`, "invalid date, expected YYYY-MM-DD"},
		{"not json", `weight`, "invalid request body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/api/weight-log", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if got := errorMessage(t, w); got != tc.wantMsg {
				t.Errorf("expected error %q, got %q", tc.wantMsg, got)
			}
		})
	}
}

// TestGetWeightLog_MissingRange verifies the range is required.
func TestGetWeightLog_MissingRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zerolog.Nop()}
	router := gin.New()
	router.GET("/api/weight-log", h.getWeightLog)

	w := doRequest(router, "GET", "/api/weight-log?start=2026-06-01", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
