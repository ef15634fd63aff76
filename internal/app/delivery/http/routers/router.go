package routers

import (
	"carelink-web/internal/app/config"
	"carelink-web/internal/app/delivery/http/controllers"
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	patientController *controllers.PatientController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.PrometheusMetrics)
	router.Use(middlewares.ErrorHandler)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(constvars.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middlewares.WithSession)

		attachAuthRoutes(r, middlewares, authController)
		attachDoctorRoutes(r, middlewares, doctorController)
		attachPatientRoutes(r, middlewares, patientController)
	})
}
