package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/barros13/chatbot/internal/contextutil"
)

// HealthHandler reports whether the service and its two databases are up.
type HealthHandler struct {
	siteDB             *sql.DB
	pdfDB              *sql.DB
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(siteDB, pdfDB *sql.DB) *HealthHandler {
	return &HealthHandler{
		siteDB:             siteDB,
		pdfDB:              pdfDB,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Issues    []string          `json:"issues,omitempty"`
}

// ServeHTTP pings both databases and reports 200 when everything answers,
// 503 otherwise. The LLM service is deliberately not probed: it is slow,
// rate-limited, and the pipeline already degrades without it.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	for name, db := range map[string]*sql.DB{"site_db": h.siteDB, "pdf_db": h.pdfDB} {
		if err := db.PingContext(checkCtx); err != nil {
			logger.WarnContext(ctx, "database health check failed", "database", name, "error", err)
			checks[name] = "error"
			issues = append(issues, name+"_unavailable")
			continue
		}
		checks[name] = "ok"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
