package auth

import (
	"carelink-web/internal/app/services/core/sessions"
	"carelink-web/internal/app/services/upstream"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/dto/requests"
	"carelink-web/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type authUsecase struct {
	SessionStore   sessions.SessionStore
	UpstreamClient upstream.Client
	Log            *zap.Logger
}

var (
	authUsecaseInstance AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	sessionStore sessions.SessionStore,
	upstreamClient upstream.Client,
	logger *zap.Logger,
) AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			SessionStore:   sessionStore,
			UpstreamClient: upstreamClient,
			Log:            logger,
		}
	})

	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, sessionID string, request *requests.LoginForm) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	creds, err := uc.UpstreamClient.Login(ctx, request.Email, request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Login upstream rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		// Wrong password, network failure and upstream 5xx all look the
		// same to the user; the distinction lives only in the logs.
		return "", exceptions.ErrLoginRejected(err)
	}

	state := sessions.Login(sessions.State{}, *creds)
	if err := uc.SessionStore.Save(ctx, sessionID, state); err != nil {
		uc.Log.Error("authUsecase.Login error persisting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("authUsecase.Login session committed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, state.Role),
	)
	return DashboardPathForRole(state.Role), nil
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.SignupForm) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	if err := uc.UpstreamClient.Signup(ctx, request); err != nil {
		uc.Log.Error("authUsecase.Signup upstream request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) && statusErr.Message != "" {
			// The backend's own rejection reason is more useful than a
			// generic one, e.g. "email already registered".
			return exceptions.BuildNewCustomError(err, statusErr.StatusCode, statusErr.Message, constvars.ErrDevUpstreamSignup)
		}
		return exceptions.ErrSignupRejected(err)
	}
	return nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.SessionStore.Purge(ctx, sessionID)
}

// DashboardPathForRole maps an account role to its landing page. An
// unknown role falls back to the login page rather than a dashboard the
// account cannot use.
func DashboardPathForRole(role string) string {
	switch role {
	case constvars.RoleDoctor:
		return constvars.RouteDoctorDashboard
	case constvars.RolePatient:
		return constvars.RoutePatientDashboard
	default:
		return constvars.RouteLogin
	}
}
