package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port               string
	CORSAllowOrigin    []string
	Env                string
	APIBaseURL         string
	AllowedRole        string
	AuthTimeout        time.Duration
	SessionSecret      string
	SessionTTL         time.Duration
	SweepInterval      time.Duration
	SessionStore       string
	DatabaseURL        string
	RedisURL           string
	DocxDir            string
	OutputDir          string
	SignatureDir       string
	EditHistoryDir     string
	SofficePath        string
	ConvertTimeout     time.Duration
	LoginRatePerMinute int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	secret := os.Getenv("SESSION_SECRET")
	if env == "production" && secret == "" {
		log.Printf("SESSION_SECRET is required in production")
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	return Config{
		Port:               getEnv("PORT", "5000"),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:                env,
		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "https://api-ticket-system.chervicaon.com/api/v1"), "/"),
		AllowedRole:        getEnv("ALLOWED_ROLE", "BUSINESS_DEVELOPMENT_USER"),
		AuthTimeout:        time.Duration(getEnvInt("AUTH_TIMEOUT_SECONDS", 10)) * time.Second,
		SessionSecret:      secret,
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour,
		SweepInterval:      time.Duration(getEnvInt("SWEEP_INTERVAL_MINUTES", 30)) * time.Minute,
		SessionStore:       normalizeSessionStore(getEnv("SESSION_STORE", "memory")),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		DocxDir:            getEnv("DOCX_DIR", filepath.Join(cwd, "temp_docx")),
		OutputDir:          getEnv("OUTPUT_DIR", filepath.Join(cwd, "temp_pdf")),
		SignatureDir:       getEnv("SIGNATURE_DIR", filepath.Join(cwd, "temp_signatures")),
		EditHistoryDir:     getEnv("EDIT_HISTORY_DIR", filepath.Join(cwd, "edit_history")),
		SofficePath:        getEnv("SOFFICE_PATH", "soffice"),
		ConvertTimeout:     time.Duration(getEnvInt("CONVERT_TIMEOUT_SECONDS", 120)) * time.Second,
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 10),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
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
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeSessionStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "pg":
		return "postgres"
	case "redis":
		return "redis"
	default:
		return "memory"
	}
}
