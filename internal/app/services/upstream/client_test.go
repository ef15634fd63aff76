package upstream

import (
	"carelink-web/internal/app/config"
	"carelink-web/internal/pkg/dto/requests"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	internalConfig := &config.InternalConfig{
		Upstream: config.Upstream{
			BaseUrl:                 server.URL,
			RequestTimeoutInSeconds: 2,
			BreakerTimeoutInSeconds: 1,
			BreakerMinRequests:      1000,
		},
	}
	return NewRestClient(internalConfig, zap.NewNop())
}

func TestLoginDecodesCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a bearer token")
		w.Write([]byte(`{"token":"tok","role":"doctor","user":{"name":"Ann"}}`))
	}))

	creds, err := client.Login(context.Background(), "ann@x.com", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok", creds.Token)
	assert.Equal(t, "doctor", creds.Role)
	assert.Equal(t, "Ann", creds.User.Name)
}

func TestLoginWithoutTokenIsShapeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"role":"doctor"}`))
	}))

	_, err := client.Login(context.Background(), "ann@x.com", "Secret1")

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "/auth/login", shapeErr.Endpoint)
}

func TestLoginSurfacesUpstreamMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"account locked"}`))
	}))

	_, err := client.Login(context.Background(), "ann@x.com", "Secret1")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "account locked", statusErr.Message)
}

func TestUnauthorizedIsSentinel(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.DoctorStatus(context.Background(), "stale")
	assert.True(t, errors.Is(err, ErrUnauthorized))

	_, err = client.OnlineDoctors(context.Background(), "stale", requests.DoctorListFilter{})
	assert.True(t, errors.Is(err, ErrUnauthorized), "every endpoint maps 401 to the same sentinel")
}

func TestDoctorStatusAttachesBearer(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/doctor/status", r.URL.Path)
		w.Write([]byte(`{"isOnline":true}`))
	}))

	online, err := client.DoctorStatus(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, online)
}

func TestUpdateDoctorStatusShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"flat boolean field", `{"isOnline":true}`, true},
		{"nested updatedDoctor field", `{"updatedDoctor":{"isOnline":false}}`, false},
		{"flat field wins over nested", `{"isOnline":false,"updatedDoctor":{"isOnline":true}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/doctor/update-status", r.URL.Path)
				w.Write([]byte(tt.body))
			}))

			online, err := client.UpdateDoctorStatus(context.Background(), "tok", true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, online)
		})
	}
}

func TestUpdateDoctorStatusUnknownShapeFailsLoudly(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))

	_, err := client.UpdateDoctorStatus(context.Background(), "tok", true)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr, "an unrecognized shape is an error, never an assumed success")
}

func TestOnlineDoctorsShapes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		count int
	}{
		{"bare array", `[{"_id":"1","name":"Jo","email":"jo@x.com"}]`, 1},
		{"data envelope", `{"data":[{"_id":"1","name":"Jo","email":"jo@x.com"},{"_id":"2","name":"Ben","email":"ben@x.com"}]}`, 2},
		{"doctors envelope", `{"doctors":[{"_id":"1","name":"Jo","email":"jo@x.com"}]}`, 1},
		{"empty bare array", `[]`, 0},
		{"empty data envelope", `{"data":[]}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))

			doctors, err := client.OnlineDoctors(context.Background(), "tok", requests.DoctorListFilter{})
			require.NoError(t, err)
			assert.Len(t, doctors, tt.count)
			if tt.count > 0 {
				assert.Equal(t, "Jo", doctors[0].Name)
			}
		})
	}
}

func TestOnlineDoctorsUnknownShapeFailsLoudly(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))

	_, err := client.OnlineDoctors(context.Background(), "tok", requests.DoctorListFilter{})

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestOnlineDoctorsFilterQuery(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cardiology", r.URL.Query().Get("specialization"))
		assert.Equal(t, "jo", r.URL.Query().Get("search"))
		w.Write([]byte(`[]`))
	}))

	_, err := client.OnlineDoctors(context.Background(), "tok", requests.DoctorListFilter{
		Specialization: "cardiology",
		Search:         "jo",
	})
	require.NoError(t, err)
}

func TestDoctorDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/doctors/abc", r.URL.Path)
		w.Write([]byte(`{"_id":"abc","name":"Jo","email":"jo@x.com","specialization":"cardiology"}`))
	}))

	doctor, err := client.Doctor(context.Background(), "tok", "abc")
	require.NoError(t, err)
	assert.Equal(t, "Jo", doctor.Name)
	assert.Equal(t, "cardiology", doctor.Specialization)
}

func TestNetworkFailureSurfacesImmediately(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	internalConfig := &config.InternalConfig{
		Upstream: config.Upstream{
			BaseUrl:                 server.URL,
			RequestTimeoutInSeconds: 1,
			BreakerTimeoutInSeconds: 1,
			BreakerMinRequests:      1000,
		},
	}
	client := NewRestClient(internalConfig, zap.NewNop())

	_, err := client.DoctorStatus(context.Background(), "tok")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}
