package patients

import (
	"carelink-web/internal/app/models"
	"carelink-web/internal/app/services/upstream"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/dto/requests"
	"carelink-web/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type patientUsecase struct {
	UpstreamClient upstream.Client
	Log            *zap.Logger
}

var (
	patientUsecaseInstance PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(upstreamClient upstream.Client, logger *zap.Logger) PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			UpstreamClient: upstreamClient,
			Log:            logger,
		}
	})

	return patientUsecaseInstance
}

func (uc *patientUsecase) OnlineDoctors(ctx context.Context, token string, filter requests.DoctorListFilter) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.OnlineDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("specialization", filter.Specialization),
	)

	doctors, err := uc.UpstreamClient.OnlineDoctors(ctx, token, filter)
	if err != nil {
		uc.Log.Error("patientUsecase.OnlineDoctors upstream request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, upstream.ErrUnauthorized) {
			return nil, err
		}
		return nil, exceptions.ErrUpstreamUnavailable(err)
	}
	return doctors, nil
}

func (uc *patientUsecase) Doctor(ctx context.Context, token, doctorID string) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Doctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.UpstreamClient.Doctor(ctx, token, doctorID)
	if err != nil {
		uc.Log.Error("patientUsecase.Doctor upstream request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, upstream.ErrUnauthorized) {
			return nil, err
		}
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return nil, err
		}
		return nil, exceptions.ErrUpstreamUnavailable(err)
	}
	return doctor, nil
}
