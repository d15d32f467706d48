package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/sangjun0330/mnl-recovery/docs"
	"github.com/sangjun0330/mnl-recovery/internal/api/handler"
	"github.com/sangjun0330/mnl-recovery/internal/api/middleware"
)

type Router struct {
	userHandler      *handler.UserHandler
	healthLogHandler *handler.HealthLogHandler
	vitalsHandler    *handler.VitalsHandler
	adviceHandler    *handler.AdviceHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	healthLogHandler *handler.HealthLogHandler,
	vitalsHandler *handler.VitalsHandler,
	adviceHandler *handler.AdviceHandler,
) *Router {
	return &Router{
		userHandler:      userHandler,
		healthLogHandler: healthLogHandler,
		vitalsHandler:    vitalsHandler,
		adviceHandler:    adviceHandler,
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
			r.Patch("/{userId}/profile", rt.userHandler.UpdateProfile)

			// Daily health logs (nested under users)
			r.Route("/{userId}/health-logs", func(r chi.Router) {
				r.Post("/", rt.healthLogHandler.Create)
				r.Get("/", rt.healthLogHandler.List)
				r.Get("/{date}", rt.healthLogHandler.GetByDate)
				r.Patch("/{date}", rt.healthLogHandler.Update)
			})

			// Recovery simulation
			r.Route("/{userId}/vitals", func(r chi.Router) {
				r.Get("/", rt.vitalsHandler.GetVitals)
				r.Get("/forecast", rt.vitalsHandler.GetForecast)
				r.Get("/advice", rt.adviceHandler.GetAdvice)
				r.Post("/advice/feedback", rt.adviceHandler.PostFeedback)
			})
		})
	})

	return r
}
