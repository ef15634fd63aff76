package doctors

import (
	"carelink-web/internal/app/services/upstream"
	"carelink-web/internal/pkg/constvars"
	"carelink-web/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	UpstreamClient upstream.Client
	Log            *zap.Logger
}

var (
	doctorUsecaseInstance DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(upstreamClient upstream.Client, logger *zap.Logger) DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			UpstreamClient: upstreamClient,
			Log:            logger,
		}
	})

	return doctorUsecaseInstance
}

func (uc *doctorUsecase) Status(ctx context.Context, token string) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Status called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	online, err := uc.UpstreamClient.DoctorStatus(ctx, token)
	if err != nil {
		uc.Log.Error("doctorUsecase.Status upstream request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, upstream.ErrUnauthorized) {
			return false, err
		}
		return false, exceptions.ErrUpstreamUnavailable(err)
	}
	return online, nil
}

func (uc *doctorUsecase) Toggle(ctx context.Context, token string, current bool) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.Toggle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("current", current),
	)

	confirmed, err := uc.UpstreamClient.UpdateDoctorStatus(ctx, token, !current)
	if err != nil {
		uc.Log.Error("doctorUsecase.Toggle upstream request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, upstream.ErrUnauthorized) {
			return current, err
		}
		// A failed toggle leaves the flag where it was.
		return current, exceptions.ErrStatusUpdateFailed(err)
	}

	return confirmed, nil
}
