package middlewares

import (
	"carelink-web/internal/app/config"
	"carelink-web/internal/app/services/core/sessions"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionStore   sessions.SessionStore
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	sessionStore sessions.SessionStore,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionStore:   sessionStore,
		InternalConfig: internalConfig,
	}
}
