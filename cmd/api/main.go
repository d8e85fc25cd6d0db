package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/barros13/chatbot/internal/cache"
	"github.com/barros13/chatbot/internal/cache/memory"
	"github.com/barros13/chatbot/internal/cache/redisstore"
	"github.com/barros13/chatbot/internal/config"
	"github.com/barros13/chatbot/internal/http"
	"github.com/barros13/chatbot/internal/llm"
	"github.com/barros13/chatbot/internal/service"
	"github.com/barros13/chatbot/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Open the two document databases
	siteDB, err := storage.Open(cfg.SiteDSN)
	if err != nil {
		log.Fatalf("Failed to open site content database: %v", err)
	}
	defer func() {
		_ = siteDB.Close()
	}()

	pdfDB, err := storage.Open(cfg.PDFDSN)
	if err != nil {
		log.Fatalf("Failed to open pdf text database: %v", err)
	}
	defer func() {
		_ = pdfDB.Close()
	}()
	slog.Info("Databases connected")

	// Pick the response cache backend
	var responseCache cache.Store
	if cfg.CacheBackend == "redis" {
		responseCache, err = redisstore.New(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to redis cache: %v", err)
		}
	} else {
		responseCache = memory.New()
	}
	slog.Info("Response cache ready", "backend", cfg.CacheBackend)

	// Create LLM client (external service layer)
	llmClient := llm.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)

	// Wire the answering service
	stores := storage.NewStores(siteDB, pdfDB)
	answerService := service.NewAnswerService(stores, llmClient, responseCache, cfg.BaseURL)
	slog.Info("Answer service initialized", "base_url", cfg.BaseURL, "model", cfg.GeminiModel)

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		AnswerService: answerService,
		SiteDB:        siteDB,
		PDFDB:         pdfDB,
	})

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
