package main

import (
	"reflect"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// TestConfigFromEnv_Defaults verifies the defaults applied to an empty environment.
func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := configFromEnv(envMap(nil))
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("log config = %q/%q, want info/console", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.DBURL != "" {
		t.Errorf("DBURL = %q, want empty", cfg.DBURL)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

// TestConfigFromEnv_Overrides verifies that set keys win and CORS origins are
// split on commas with blanks dropped.
func TestConfigFromEnv_Overrides(t *testing.T) {
	cfg := configFromEnv(envMap(map[string]string{
		"PORT":                 "8080",
		"DB_URL":               "postgres://localhost/protein",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "json",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,,",
	}))
	if cfg.Port != "8080" || cfg.DBURL != "postgres://localhost/protein" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("log config = %q/%q, want debug/json", cfg.LogLevel, cfg.LogFormat)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}
