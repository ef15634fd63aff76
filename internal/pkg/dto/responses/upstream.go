package responses

import "carelink-web/internal/app/models"

// Credentials is the documented success shape of the upstream login
// endpoint. The user snapshot is optional; token and role are not.
type Credentials struct {
	Token string       `json:"token"`
	Role  string       `json:"role"`
	User  *models.User `json:"user,omitempty"`
}

// UpstreamError is the error payload most upstream endpoints return.
type UpstreamError struct {
	Message string `json:"message"`
}
