package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the runtime settings for the label service. Values come from
// the environment with defaults that let the binary run out of the box next
// to a bom_data.xlsx.
type Config struct {
	Port          string
	WorkbookPath  string
	TemplateGlob  string
	StaticDir     string
	OutputDir     string
	FontDir       string
	SweepSchedule string
	SweepMaxAge   time.Duration
}

// Load reads the configuration from the environment.
func Load() *Config {
	staticDir := getEnv("STATIC_DIR", "static")
	return &Config{
		Port:          getEnv("SERVER_PORT", "8080"),
		WorkbookPath:  getEnv("BOM_WORKBOOK_PATH", "bom_data.xlsx"),
		TemplateGlob:  getEnv("TEMPLATE_GLOB", "templates/*"),
		StaticDir:     staticDir,
		OutputDir:     getEnv("LABEL_OUTPUT_DIR", filepath.Join(staticDir, "labels")),
		FontDir:       getEnv("FONT_DIR", "fonts"),
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "0 0 4 * * *"),
		SweepMaxAge:   getEnvAsDuration("SWEEP_MAX_AGE", 720*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
