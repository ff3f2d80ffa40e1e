package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the trace tool. Everything is
// optional; the zero configuration reproduces the stock behavior with
// diagnostics at info level.
type Config struct {
	LogLevel    string // diagnostic log level: debug, info, warn, error
	StyleFile   string // optional palette override file
	Markup      bool   // also print the PlantUML documents to stdout
	ArtifactDir string // where .puml artifacts land; empty means the temp dir
	PlantUMLJar string // path to plantuml.jar; empty disables image rendering
}

// Load reads configuration from P2PTRACE_* environment variables. A .env
// file is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	markup := os.Getenv("P2PTRACE_MARKUP")
	return &Config{
		LogLevel:    getEnv("P2PTRACE_LOG_LEVEL", "info"),
		StyleFile:   os.Getenv("P2PTRACE_STYLE_FILE"),
		Markup:      markup == "1" || markup == "true",
		ArtifactDir: os.Getenv("P2PTRACE_ARTIFACT_DIR"),
		PlantUMLJar: os.Getenv("P2PTRACE_PLANTUML_JAR"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
