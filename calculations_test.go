package main

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"", defaultCalculationsLimit, true},
		{"5", 5, true},
		{"1000", maxCalculationsLimit, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"ten", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseLimit(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("parseLimit(%q) = %d, %v; want %d, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

// TestCreateCalculation_InvalidInput verifies that calculator errors are
// returned as 400 before anything is written.
func TestCreateCalculation_InvalidInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zerolog.Nop()}
	router := gin.New()
	router.POST("/api/protein/calculations", func(c *gin.Context) {
		c.Set("user_id", 1)
		c.Next()
	}, h.createCalculation)

	w := doRequest(router, "POST", "/api/protein/calculations",
		`{"age":0,"weight":70,"weight_unit":"kg","activity_level":"very_active","goal":"muscle_gain"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if got := errorMessage(t, w); got != "Age must be between 1 and 120 years" {
		t.Errorf("unexpected error %q", got)
	}
}
