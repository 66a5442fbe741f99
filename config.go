package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// config holds the server settings read from the environment.
type config struct {
	Port        string
	DBURL       string // optional; account endpoints are disabled without it
	LogLevel    string
	LogFormat   string
	GinMode     string
	CORSOrigins []string
}

// loadConfig reads .env (if present) into the process environment and then
// builds a config from it. A missing .env is not an error.
func loadConfig() (config, bool) {
	envLoaded := godotenv.Load() == nil
	return configFromEnv(os.Getenv), envLoaded
}

// configFromEnv builds a config from getenv, applying defaults for unset keys.
func configFromEnv(getenv func(string) string) config {
	cfg := config{
		Port:        getenv("PORT"),
		DBURL:       getenv("DB_URL"),
		LogLevel:    getenv("LOG_LEVEL"),
		LogFormat:   getenv("LOG_FORMAT"),
		GinMode:     getenv("GIN_MODE"),
		CORSOrigins: []string{"*"},
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if origins := getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}
	return cfg
}
