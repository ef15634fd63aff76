package main

import (
	"carelink-web/internal/app/config"
	"carelink-web/internal/app/delivery/http/controllers"
	"carelink-web/internal/app/delivery/http/middlewares"
	"carelink-web/internal/app/delivery/http/routers"
	"carelink-web/internal/app/delivery/http/views"
	"carelink-web/internal/app/drivers/database"
	"carelink-web/internal/app/drivers/logger"
	"carelink-web/internal/app/services/core/auth"
	"carelink-web/internal/app/services/core/doctors"
	"carelink-web/internal/app/services/core/patients"
	"carelink-web/internal/app/services/core/sessions"
	sharedredis "carelink-web/internal/app/services/shared/redis"
	"carelink-web/internal/app/services/upstream"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Sessions
	sessionTTL := time.Duration(bootstrap.InternalConfig.Session.TTLInHours) * time.Hour
	sessionStore := sessions.NewRedisSessionStore(redisRepository, sessionTTL)

	// Upstream REST client
	upstreamClient := upstream.NewRestClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Views
	renderer, err := views.NewRenderer()
	if err != nil {
		logrus.Fatalf("Failed to parse templates: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionStore, bootstrap.InternalConfig, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(sessionStore, upstreamClient, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, renderer)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(upstreamClient, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, sessionStore, renderer)

	// Patient
	patientUsecase := patients.NewPatientUsecase(upstreamClient, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, sessionStore, renderer)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		doctorController,
		patientController,
	)
}
