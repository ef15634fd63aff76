package controllers

import (
	"carelink-web/internal/app/delivery/http/views"
	"carelink-web/internal/app/models"
	"carelink-web/internal/app/services/core/sessions"
	"carelink-web/internal/app/services/upstream"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorUsecase struct {
	statusResult bool
	statusErr    error
	toggleResult bool
	toggleErr    error
}

func (f *fakeDoctorUsecase) Status(context.Context, string) (bool, error) {
	return f.statusResult, f.statusErr
}

func (f *fakeDoctorUsecase) Toggle(context.Context, string, bool) (bool, error) {
	return f.toggleResult, f.toggleErr
}

type recordingSessionStore struct {
	dropped []string
	purged  []string
}

func (s *recordingSessionStore) Load(context.Context, string) (sessions.State, error) {
	return sessions.State{}, nil
}

func (s *recordingSessionStore) Save(context.Context, string, sessions.State) error {
	return nil
}

func (s *recordingSessionStore) Purge(_ context.Context, sessionID string) error {
	s.purged = append(s.purged, sessionID)
	return nil
}

func (s *recordingSessionStore) DropToken(_ context.Context, sessionID string) error {
	s.dropped = append(s.dropped, sessionID)
	return nil
}

func newDoctorController(t *testing.T, uc *fakeDoctorUsecase, store *recordingSessionStore) *DoctorController {
	t.Helper()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	return NewDoctorController(zap.NewNop(), uc, store, renderer)
}

func doctorRequest(method, path string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = postForm(path, form)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_ID_KEY, "sess-1")
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_STATE_KEY, sessions.State{
		Token: "tok",
		Role:  constvars.RoleDoctor,
		User:  &models.User{Name: "Dr. Ann"},
	})
	return req.WithContext(ctx)
}

func TestDoctorDashboardShowsCurrentStatus(t *testing.T) {
	tests := []struct {
		name      string
		online    bool
		wantBadge string
		wantCTA   string
	}{
		{"online doctor", true, "Online", "Go offline"},
		{"offline doctor", false, "Offline", "Go online"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := newDoctorController(t, &fakeDoctorUsecase{statusResult: tt.online}, &recordingSessionStore{})

			rec := httptest.NewRecorder()
			ctrl.Dashboard(rec, doctorRequest(http.MethodGet, "/doctor-dashboard", nil))

			body := rec.Body.String()
			assert.Contains(t, body, "Dr. Ann")
			assert.Contains(t, body, tt.wantBadge)
			assert.Contains(t, body, tt.wantCTA)
		})
	}
}

func TestDoctorDashboardUnauthorizedDropsTokenAndRedirects(t *testing.T) {
	store := &recordingSessionStore{}
	ctrl := newDoctorController(t, &fakeDoctorUsecase{statusErr: upstream.ErrUnauthorized}, store)

	rec := httptest.NewRecorder()
	ctrl.Dashboard(rec, doctorRequest(http.MethodGet, "/doctor-dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, constvars.RouteLogin, rec.Header().Get("Location"))
	assert.Equal(t, []string{"sess-1"}, store.dropped)
	assert.Empty(t, store.purged, "a stale token drops the credential, not the whole session")
}

func TestToggleSuccessRedirectsBackToDashboard(t *testing.T) {
	ctrl := newDoctorController(t, &fakeDoctorUsecase{toggleResult: true}, &recordingSessionStore{})

	rec := httptest.NewRecorder()
	ctrl.ToggleStatus(rec, doctorRequest(http.MethodPost, "/doctor-dashboard/status", url.Values{
		"current": {"false"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, constvars.RouteDoctorDashboard, rec.Header().Get("Location"))
}

func TestToggleFailureRendersPreToggleStatusWithError(t *testing.T) {
	// A failed toggle must not show the doctor as flipped.
	uc := &fakeDoctorUsecase{
		toggleResult: true, // pre-toggle value echoed back by the usecase
		toggleErr:    exceptions.ErrStatusUpdateFailed(assert.AnError),
	}
	ctrl := newDoctorController(t, uc, &recordingSessionStore{})

	rec := httptest.NewRecorder()
	ctrl.ToggleStatus(rec, doctorRequest(http.MethodPost, "/doctor-dashboard/status", url.Values{
		"current": {"true"},
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, constvars.ErrClientStatusUpdateFailed)
	assert.Contains(t, body, ">Online</span>")
	assert.Contains(t, body, "Go offline")
}

func TestToggleUnauthorizedDropsTokenAndRedirects(t *testing.T) {
	store := &recordingSessionStore{}
	ctrl := newDoctorController(t, &fakeDoctorUsecase{toggleErr: upstream.ErrUnauthorized}, store)

	rec := httptest.NewRecorder()
	ctrl.ToggleStatus(rec, doctorRequest(http.MethodPost, "/doctor-dashboard/status", url.Values{
		"current": {"true"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"sess-1"}, store.dropped)
}
