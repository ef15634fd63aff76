package upstream

import (
	"bytes"
	"carelink-web/internal/app/config"
	"carelink-web/internal/app/models"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/dto/requests"
	"carelink-web/internal/pkg/dto/responses"
	"carelink-web/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

type restClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Breaker    *gobreaker.CircuitBreaker[*http.Response]
	Log        *zap.Logger
}

func NewRestClient(internalConfig *config.InternalConfig, log *zap.Logger) Client {
	settings := gobreaker.Settings{
		Name:    "upstream",
		Timeout: time.Duration(internalConfig.Upstream.BreakerTimeoutInSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < uint32(internalConfig.Upstream.BreakerMinRequests) {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("upstream circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &restClient{
		BaseUrl: internalConfig.Upstream.BaseUrl,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Upstream.RequestTimeoutInSeconds) * time.Second,
		},
		Breaker: gobreaker.NewCircuitBreaker[*http.Response](settings),
		Log:     log,
	}
}

// do sends one request through the breaker. There are no retries: a
// failed call surfaces immediately and the user decides whether to try
// again.
func (c *restClient) do(ctx context.Context, method, path, token string, payload interface{}) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		requestJSON, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseJSON(err)
		}
		body = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, body)
	if err != nil {
		return nil, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := c.Breaker.Execute(func() (*http.Response, error) {
		return c.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode == constvars.StatusUnauthorized {
		return nil, nil, ErrUnauthorized
	}

	return resp, respBody, nil
}

// statusError extracts the upstream's own message when the payload
// carries one.
func statusError(statusCode int, body []byte) error {
	var payload responses.UpstreamError
	json.Unmarshal(body, &payload)
	return &StatusError{StatusCode: statusCode, Message: payload.Message}
}

func (c *restClient) Login(ctx context.Context, email, password string) (*responses.Credentials, error) {
	payload := map[string]string{"email": email, "password": password}

	resp, body, err := c.do(ctx, constvars.MethodPost, "/auth/login", "", payload)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, statusError(resp.StatusCode, body)
	}

	return decodeCredentials("/auth/login", body)
}

func (c *restClient) Signup(ctx context.Context, form *requests.SignupForm) error {
	resp, body, err := c.do(ctx, constvars.MethodPost, "/auth/signup", "", form)
	if err != nil {
		return err
	}
	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return statusError(resp.StatusCode, body)
	}

	// The signup body is echoed or ignored; nothing to decode.
	return nil
}

func (c *restClient) DoctorStatus(ctx context.Context, token string) (bool, error) {
	resp, body, err := c.do(ctx, constvars.MethodGet, "/doctor/status", token, nil)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != constvars.StatusOK {
		return false, statusError(resp.StatusCode, body)
	}

	return decodeStatus("/doctor/status", body)
}

func (c *restClient) UpdateDoctorStatus(ctx context.Context, token string, online bool) (bool, error) {
	payload := requests.UpdateDoctorStatus{IsOnline: online}

	resp, body, err := c.do(ctx, constvars.MethodPut, "/doctor/update-status", token, payload)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != constvars.StatusOK {
		return false, statusError(resp.StatusCode, body)
	}

	return decodeStatus("/doctor/update-status", body)
}

func (c *restClient) OnlineDoctors(ctx context.Context, token string, filter requests.DoctorListFilter) ([]models.Doctor, error) {
	params := url.Values{}
	if filter.Specialization != "" {
		params.Set("specialization", filter.Specialization)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}

	path := "/doctor/online-doctors"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, body, err := c.do(ctx, constvars.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, statusError(resp.StatusCode, body)
	}

	return decodeDoctorList("/doctor/online-doctors", body)
}

func (c *restClient) Doctor(ctx context.Context, token, doctorID string) (*models.Doctor, error) {
	resp, body, err := c.do(ctx, constvars.MethodGet, fmt.Sprintf("/doctors/%s", url.PathEscape(doctorID)), token, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrDoctorNotFound(statusError(resp.StatusCode, body))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, statusError(resp.StatusCode, body)
	}

	doctor := new(models.Doctor)
	if err := json.Unmarshal(body, doctor); err != nil {
		return nil, &ShapeError{Endpoint: "/doctors/{id}", Body: truncateBody(body)}
	}
	return doctor, nil
}
