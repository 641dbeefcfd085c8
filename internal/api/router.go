package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/emily-flambe/naptime/docs"
	"github.com/emily-flambe/naptime/internal/api/handler"
	"github.com/emily-flambe/naptime/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	advisoryHandler *handler.AdvisoryHandler
	sessionHandler  *handler.SessionHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(advisoryHandler *handler.AdvisoryHandler, sessionHandler *handler.SessionHandler, insightsHandler *handler.InsightsHandler) *Router {
	return &Router{
		advisoryHandler: advisoryHandler,
		sessionHandler:  sessionHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/advisory", rt.advisoryHandler.Get)
		r.Get("/insights", rt.insightsHandler.Get)

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", rt.sessionHandler.List)
			r.Post("/sync", rt.sessionHandler.Sync)
		})
	})

	return r
}
