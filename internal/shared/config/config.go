package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	ExtractorMode   string
	MaxUploadBytes  int64

	// Score blend. Defaults reproduce the published 40/30/30 formula; the
	// values are deliberately configuration so they can be tuned without
	// touching the scoring code.
	KeywordWeight    float64
	SimilarityWeight float64
	SectionWeight    float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ExtractorMode:    normalizeExtractorMode(getEnv("EXTRACTOR_MODE", "auto")),
		MaxUploadBytes:   getEnvInt64("MAX_UPLOAD_BYTES", 5<<20),
		KeywordWeight:    getEnvFloat("SCORE_KEYWORD_WEIGHT", 0.40),
		SimilarityWeight: getEnvFloat("SCORE_SIMILARITY_WEIGHT", 0.30),
		SectionWeight:    getEnvFloat("SCORE_SECTION_WEIGHT", 0.30),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return val
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		log.Printf("config: invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeExtractorMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "model":
		return "model"
	case "fallback":
		return "fallback"
	default:
		return "auto"
	}
}
