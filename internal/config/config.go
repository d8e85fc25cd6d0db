package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once at
// startup and immutable for the process lifetime.
type Config struct {
	// BaseURL is the prefix for every link built into answers.
	BaseURL string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// SiteDSN and PDFDSN are the connection strings for the site content
	// database and the PDF text database.
	SiteDSN string
	PDFDSN  string

	// CacheBackend selects the response cache: "memory" or "redis".
	CacheBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config.
// It applies defaults for optional fields and validates required ones.
// If a .env file exists in the current directory or project root, it is
// loaded automatically; variables already set take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up to find the project root (where go.mod is) for a .env file
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		BaseURL:       os.Getenv("BASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		CacheBackend:  getEnv("CACHE_BACKEND", "memory"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		APIPort:       getEnv("API_PORT", "5000"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BASE_URL is required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	cfg.SiteDSN, err = buildDSN("DB_SITE")
	if err != nil {
		return nil, err
	}
	cfg.PDFDSN, err = buildDSN("DB_PDF")
	if err != nil {
		return nil, err
	}

	switch cfg.CacheBackend {
	case "memory", "redis":
	default:
		return nil, fmt.Errorf("CACHE_BACKEND must be \"memory\" or \"redis\", got %q", cfg.CacheBackend)
	}

	redisDBStr := getEnv("REDIS_DB", "0")
	cfg.RedisDB, err = strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB must be a valid integer: %w", err)
	}

	cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildDSN assembles a Postgres connection string from the HOST, PORT, USER,
// PASSWORD, NAME and SSLMODE variables under the given prefix.
func buildDSN(prefix string) (string, error) {
	host := os.Getenv(prefix + "_HOST")
	user := os.Getenv(prefix + "_USER")
	name := os.Getenv(prefix + "_NAME")
	if host == "" || user == "" || name == "" {
		return "", fmt.Errorf("%s_HOST, %s_USER and %s_NAME are required", prefix, prefix, prefix)
	}
	port := getEnv(prefix+"_PORT", "5432")
	password := os.Getenv(prefix + "_PASSWORD")
	sslmode := getEnv(prefix+"_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, name, sslmode)
	if password != "" {
		dsn += " password=" + password
	}
	return dsn, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", level)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
