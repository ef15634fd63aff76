package config

import (
	"carelink-web/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
		},
		Upstream: Upstream{
			BaseUrl:                 utils.GetEnvString("UPSTREAM_BASE_URL", "http://localhost:7800/api"),
			RequestTimeoutInSeconds: utils.GetEnvInt("UPSTREAM_REQUEST_TIMEOUT_IN_SECONDS", 10),
			BreakerTimeoutInSeconds: utils.GetEnvInt("UPSTREAM_BREAKER_TIMEOUT_IN_SECONDS", 30),
			BreakerMinRequests:      utils.GetEnvInt("UPSTREAM_BREAKER_MIN_REQUESTS", 5),
		},
		Session: Session{
			TTLInHours:   utils.GetEnvInt("SESSION_TTL_IN_HOURS", 24),
			SecureCookie: utils.GetEnvBool("SESSION_SECURE_COOKIE", false),
		},
	}
}
