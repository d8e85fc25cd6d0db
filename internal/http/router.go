package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/barros13/chatbot/internal/handlers"
	"github.com/barros13/chatbot/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	AnswerService service.AnswerService
	SiteDB        *sql.DB
	PDFDB         *sql.DB
}

// NewRouter creates the HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(CORS)

	askHandler := handlers.NewAskHandler(deps.AnswerService)
	healthHandler := handlers.NewHealthHandler(deps.SiteDB, deps.PDFDB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/perguntar", askHandler)
	})
	r.Method(http.MethodGet, "/healthz", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
