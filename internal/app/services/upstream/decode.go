package upstream

import (
	"bytes"
	"carelink-web/internal/app/models"
	"carelink-web/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

func truncateBody(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

// decodeCredentials accepts the documented login contract
// {token, role, user?}. A response without a token would turn into a
// malformed bearer header on every later call, so it is rejected here.
func decodeCredentials(endpoint string, body []byte) (*responses.Credentials, error) {
	creds := new(responses.Credentials)
	if err := json.Unmarshal(body, creds); err != nil {
		return nil, &ShapeError{Endpoint: endpoint, Body: truncateBody(body)}
	}
	if creds.Token == "" {
		return nil, &ShapeError{Endpoint: endpoint, Body: truncateBody(body)}
	}
	return creds, nil
}

type statusEnvelope struct {
	IsOnline      *bool `json:"isOnline"`
	UpdatedDoctor *struct {
		IsOnline *bool `json:"isOnline"`
	} `json:"updatedDoctor"`
}

// decodeStatus accepts the two documented status shapes: a flat
// {isOnline} or a nested {updatedDoctor:{isOnline}}. The flat field
// wins when both are present. Anything else is a ShapeError, never an
// assumed success.
func decodeStatus(endpoint string, body []byte) (bool, error) {
	var envelope statusEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false, &ShapeError{Endpoint: endpoint, Body: truncateBody(body)}
	}
	if envelope.IsOnline != nil {
		return *envelope.IsOnline, nil
	}
	if envelope.UpdatedDoctor != nil && envelope.UpdatedDoctor.IsOnline != nil {
		return *envelope.UpdatedDoctor.IsOnline, nil
	}
	return false, &ShapeError{Endpoint: endpoint, Body: truncateBody(body)}
}

type listEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Doctors json.RawMessage `json:"doctors"`
}

// decodeDoctorList accepts the three documented list shapes: a bare
// array, {data:[...]}, or {doctors:[...]}.
func decodeDoctorList(endpoint string, body []byte) ([]models.Doctor, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var doctors []models.Doctor
		if err := json.Unmarshal(trimmed, &doctors); err != nil {
			return nil, &ShapeError{Endpoint: endpoint, Body: truncateBody(body)}
		}
		return doctors, nil
	}

	var envelope listEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, &ShapeError{Endpoint: endpoint, Body: truncateBody(body)}
	}

	var raw json.RawMessage
	switch {
	case envelope.Data != nil:
		raw = envelope.Data
	case envelope.Doctors != nil:
		raw = envelope.Doctors
	default:
		return nil, &ShapeError{Endpoint: endpoint, Body: truncateBody(body)}
	}

	var doctors []models.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, &ShapeError{Endpoint: endpoint, Body: truncateBody(body)}
	}
	return doctors, nil
}
