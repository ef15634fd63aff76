package auth

import (
	"carelink-web/internal/pkg/dto/requests"
	"context"
)

type AuthUsecase interface {
	// Login authenticates against the upstream backend, commits the
	// resulting session under sessionID and returns the dashboard path
	// for the authenticated role.
	Login(ctx context.Context, sessionID string, request *requests.LoginForm) (string, error)

	// Signup registers a new account upstream. It does not log the
	// account in; the caller sends the user to the login page.
	Signup(ctx context.Context, request *requests.SignupForm) error

	// Logout clears the in-memory session and its durable mirror as one
	// operation.
	Logout(ctx context.Context, sessionID string) error
}
