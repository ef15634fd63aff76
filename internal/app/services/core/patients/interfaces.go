package patients

import (
	"carelink-web/internal/app/models"
	"carelink-web/internal/pkg/dto/requests"
	"context"
)

type PatientUsecase interface {
	// OnlineDoctors lists currently available doctors, optionally
	// narrowed by specialization and a free-text search.
	OnlineDoctors(ctx context.Context, token string, filter requests.DoctorListFilter) ([]models.Doctor, error)

	// Doctor fetches one doctor's public profile.
	Doctor(ctx context.Context, token, doctorID string) (*models.Doctor, error)
}
