package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-scoring/docs"
	"github.com/blaisecz/sleep-scoring/internal/api/handler"
	"github.com/blaisecz/sleep-scoring/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler       *handler.UserHandler
	sleepScoreHandler *handler.SleepScoreHandler
}

func NewRouter(userHandler *handler.UserHandler, sleepScoreHandler *handler.SleepScoreHandler) *Router {
	return &Router{
		userHandler:       userHandler,
		sleepScoreHandler: sleepScoreHandler,
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
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Scoring and session history (nested under users)
			r.Post("/{userId}/sleep-scores", rt.sleepScoreHandler.Score)
			r.Get("/{userId}/sleep-sessions", rt.sleepScoreHandler.List)
		})
	})

	return r
}
