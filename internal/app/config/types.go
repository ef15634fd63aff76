package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		Upstream Upstream
		Session  Session
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                       string
		Port                      string
		Address                   string
		ShutdownTimeout           int
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	// Upstream points at the external telehealth backend that owns
	// authentication and the doctor store.
	Upstream struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		BreakerTimeoutInSeconds int
		BreakerMinRequests      int
	}

	Session struct {
		TTLInHours   int
		SecureCookie bool
	}
)
