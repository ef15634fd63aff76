package auth

import (
	"carelink-web/internal/app/models"
	"carelink-web/internal/app/services/core/sessions"
	"carelink-web/internal/app/services/upstream"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/dto/requests"
	"carelink-web/internal/pkg/dto/responses"
	"carelink-web/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUpstreamClient struct {
	loginResult *responses.Credentials
	loginErr    error
	signupErr   error
	signupForms []*requests.SignupForm
}

func (f *fakeUpstreamClient) Login(context.Context, string, string) (*responses.Credentials, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeUpstreamClient) Signup(_ context.Context, form *requests.SignupForm) error {
	f.signupForms = append(f.signupForms, form)
	return f.signupErr
}

func (f *fakeUpstreamClient) DoctorStatus(context.Context, string) (bool, error) {
	panic("not used")
}

func (f *fakeUpstreamClient) UpdateDoctorStatus(context.Context, string, bool) (bool, error) {
	panic("not used")
}

func (f *fakeUpstreamClient) OnlineDoctors(context.Context, string, requests.DoctorListFilter) ([]models.Doctor, error) {
	panic("not used")
}

func (f *fakeUpstreamClient) Doctor(context.Context, string, string) (*models.Doctor, error) {
	panic("not used")
}

type fakeSessionStore struct {
	saved  map[string]sessions.State
	purged []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{saved: make(map[string]sessions.State)}
}

func (f *fakeSessionStore) Load(_ context.Context, sessionID string) (sessions.State, error) {
	return f.saved[sessionID], nil
}

func (f *fakeSessionStore) Save(_ context.Context, sessionID string, state sessions.State) error {
	f.saved[sessionID] = state
	return nil
}

func (f *fakeSessionStore) Purge(_ context.Context, sessionID string) error {
	delete(f.saved, sessionID)
	f.purged = append(f.purged, sessionID)
	return nil
}

func (f *fakeSessionStore) DropToken(_ context.Context, sessionID string) error {
	state := f.saved[sessionID]
	state.Token = ""
	f.saved[sessionID] = state
	return nil
}

func TestLoginCommitsSessionAndRoutesByRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{"doctor lands on doctor dashboard", constvars.RoleDoctor, constvars.RouteDoctorDashboard},
		{"patient lands on patient dashboard", constvars.RolePatient, constvars.RoutePatientDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeSessionStore()
			client := &fakeUpstreamClient{
				loginResult: &responses.Credentials{Token: "tok", Role: tt.role},
			}
			uc := &authUsecase{SessionStore: store, UpstreamClient: client, Log: zap.NewNop()}

			path, err := uc.Login(context.Background(), "sess-1", &requests.LoginForm{
				Email:    "a@x.com",
				Password: "Secret1",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, path)

			state := store.saved["sess-1"]
			assert.True(t, state.Authenticated())
			assert.Equal(t, tt.role, state.Role)
		})
	}
}

func TestLoginRejectionShowsFriendlyMessage(t *testing.T) {
	store := newFakeSessionStore()
	client := &fakeUpstreamClient{
		loginErr: &upstream.StatusError{StatusCode: 401, Message: "bad credentials"},
	}
	uc := &authUsecase{SessionStore: store, UpstreamClient: client, Log: zap.NewNop()}

	_, err := uc.Login(context.Background(), "sess-1", &requests.LoginForm{
		Email:    "a@x.com",
		Password: "wrong",
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
	assert.Empty(t, store.saved, "a rejected login must not commit a session")
}

func TestLoginOutageLooksLikeRejectedCredentials(t *testing.T) {
	// Wrong password and upstream outage show the same message; the
	// form never reveals which one happened.
	store := newFakeSessionStore()
	client := &fakeUpstreamClient{loginErr: errors.New("connection refused")}
	uc := &authUsecase{SessionStore: store, UpstreamClient: client, Log: zap.NewNop()}

	_, err := uc.Login(context.Background(), "sess-1", &requests.LoginForm{
		Email:    "a@x.com",
		Password: "Secret1",
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
}

func TestSignupForwardsFormAndMapsRejection(t *testing.T) {
	client := &fakeUpstreamClient{
		signupErr: &upstream.StatusError{StatusCode: 409, Message: "email taken"},
	}
	uc := &authUsecase{SessionStore: newFakeSessionStore(), UpstreamClient: client, Log: zap.NewNop()}

	form := &requests.SignupForm{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "Secret1",
		Role:     constvars.RolePatient,
	}
	err := uc.Signup(context.Background(), form)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "email taken", customErr.ClientMessage, "the backend's own reason is shown verbatim")
	require.Len(t, client.signupForms, 1)
	assert.Equal(t, "ann@x.com", client.signupForms[0].Email)
}

func TestSignupRejectionWithoutMessageFallsBack(t *testing.T) {
	client := &fakeUpstreamClient{
		signupErr: &upstream.StatusError{StatusCode: 500},
	}
	uc := &authUsecase{SessionStore: newFakeSessionStore(), UpstreamClient: client, Log: zap.NewNop()}

	err := uc.Signup(context.Background(), &requests.SignupForm{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "Secret1",
		Role:     constvars.RolePatient,
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientSignupFailed, customErr.ClientMessage)
}

func TestLogoutPurgesTheStore(t *testing.T) {
	store := newFakeSessionStore()
	store.saved["sess-1"] = sessions.State{Token: "tok", Role: constvars.RoleDoctor}
	uc := &authUsecase{SessionStore: store, UpstreamClient: &fakeUpstreamClient{}, Log: zap.NewNop()}

	require.NoError(t, uc.Logout(context.Background(), "sess-1"))

	assert.Empty(t, store.saved)
	assert.Equal(t, []string{"sess-1"}, store.purged)
}

func TestDashboardPathForUnknownRole(t *testing.T) {
	assert.Equal(t, constvars.RouteLogin, DashboardPathForRole("admin"))
}
