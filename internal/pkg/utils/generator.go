package utils

import (
	"carelink-web/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}
