package upstream

import (
	"carelink-web/internal/app/models"
	"carelink-web/internal/pkg/dto/requests"
	"carelink-web/internal/pkg/dto/responses"
	"context"
)

// Client wraps the external telehealth backend's REST surface. Every
// call attaches the given bearer token when it is non-empty; none of
// them retries, and all of them respect ctx for cancellation.
type Client interface {
	Login(ctx context.Context, email, password string) (*responses.Credentials, error)
	Signup(ctx context.Context, form *requests.SignupForm) error
	DoctorStatus(ctx context.Context, token string) (bool, error)
	UpdateDoctorStatus(ctx context.Context, token string, online bool) (bool, error)
	OnlineDoctors(ctx context.Context, token string, filter requests.DoctorListFilter) ([]models.Doctor, error)
	Doctor(ctx context.Context, token, doctorID string) (*models.Doctor, error)
}
