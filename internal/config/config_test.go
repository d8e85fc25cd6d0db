package config

import (
	"log/slog"
	"strings"
	"testing"
)

// setRequiredEnv seeds the minimum environment for Load to succeed. Optional
// variables are blanked so prior test state or a developer .env file cannot
// leak into assertions.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BASE_URL", "https://example.gov.br/")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DB_SITE_HOST", "site-db")
	t.Setenv("DB_SITE_USER", "site")
	t.Setenv("DB_SITE_NAME", "site_content")
	t.Setenv("DB_PDF_HOST", "pdf-db")
	t.Setenv("DB_PDF_USER", "pdf")
	t.Setenv("DB_PDF_NAME", "pdf_texts")

	for _, key := range []string{
		"GEMINI_MODEL", "GEMINI_BASE_URL", "CACHE_BACKEND", "REDIS_ADDR",
		"REDIS_PASSWORD", "REDIS_DB", "API_PORT", "LOG_LEVEL", "LOG_FORMAT",
		"DB_SITE_PORT", "DB_SITE_PASSWORD", "DB_SITE_SSLMODE",
		"DB_PDF_PORT", "DB_PDF_PASSWORD", "DB_PDF_SSLMODE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.CacheBackend != "memory" {
		t.Errorf("CacheBackend = %q, want memory", cfg.CacheBackend)
	}
	if cfg.APIPort != "5000" {
		t.Errorf("APIPort = %q, want 5000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoad_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantErr string
	}{
		{name: "base url", unset: "BASE_URL", wantErr: "BASE_URL is required"},
		{name: "gemini key", unset: "GEMINI_API_KEY", wantErr: "GEMINI_API_KEY is required"},
		{name: "site db host", unset: "DB_SITE_HOST", wantErr: "DB_SITE_HOST"},
		{name: "pdf db name", unset: "DB_PDF_NAME", wantErr: "DB_PDF_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_BuildsDSNs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_SITE_PORT", "5433")
	t.Setenv("DB_SITE_PASSWORD", "s3cret")
	t.Setenv("DB_PDF_SSLMODE", "require")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantSite := "host=site-db port=5433 user=site dbname=site_content sslmode=disable password=s3cret"
	if cfg.SiteDSN != wantSite {
		t.Errorf("SiteDSN = %q, want %q", cfg.SiteDSN, wantSite)
	}
	wantPDF := "host=pdf-db port=5432 user=pdf dbname=pdf_texts sslmode=require"
	if cfg.PDFDSN != wantPDF {
		t.Errorf("PDFDSN = %q, want %q", cfg.PDFDSN, wantPDF)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown cache backend", key: "CACHE_BACKEND", value: "memcached"},
		{name: "non-integer redis db", key: "REDIS_DB", value: "one"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q expected error", tt.key, tt.value)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLogLevel(tt.input)
		if err != nil {
			t.Errorf("parseLogLevel(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
