package main

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc-123", "abc-123", true},
		{"Bearer   abc ", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := bearerToken(tc.header)
		if got != tc.want || ok != tc.ok {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}

// TestAuthMiddleware_MissingHeader verifies that requests without a bearer
// token are rejected before the token lookup.
func TestAuthMiddleware_MissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zerolog.Nop()}
	router := gin.New()
	router.GET("/api/protein/profile", h.authMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doRequest(router, "GET", "/api/protein/profile", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if got := errorMessage(t, w); got != "missing or invalid authorization header" {
		t.Errorf("unexpected error %q", got)
	}
}
