package impl

import (
	"context"
	"log/slog"
	"time"

	"displayfleet/config"
	deliverycontext "displayfleet/internal/delivery/context"
	"displayfleet/internal/domain/entity"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/domain/service"
	"displayfleet/internal/errors"
	"displayfleet/internal/usecase"
	"displayfleet/internal/util"

	"go.uber.org/fx"
)

// HeartbeatServiceParams holds dependencies for the heartbeat service, injected by Fx
type HeartbeatServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

type heartbeatService struct {
	txManager          repository.TransactionManager
	events             eventEmitter
	maxTelemetryLength int
	logger             *slog.Logger
	now                func() time.Time
}

// NewHeartbeatService is the constructor for heartbeatService.
func NewHeartbeatService(params HeartbeatServiceParams) usecase.HeartbeatUsecase {
	maxTelemetryLength := 0
	if params.Config != nil && params.Config.Fleet != nil {
		maxTelemetryLength = params.Config.Fleet.MaxTelemetryLength
	}

	return &heartbeatService{
		txManager:          params.TxManager,
		events:             eventEmitter{publisher: params.Publisher, logger: params.Logger},
		maxTelemetryLength: maxTelemetryLength,
		logger:             params.Logger,
		now:                time.Now,
	}
}

func (srv *heartbeatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Heartbeat records the check-in and takes the pending command in one transaction.
func (srv *heartbeatService) Heartbeat(ctx context.Context, input *usecase.HeartbeatInput) (*usecase.HeartbeatResult, error) {
	deviceID, err := normalizeDeviceID(input.DeviceID)
	if err != nil {
		return nil, err
	}

	hb := &entity.Heartbeat{
		DeviceID:     deviceID,
		ReceivedAt:   timestamp(srv.now),
		IPAddress:    srv.telemetry(input.IPAddress),
		BrowserInfo:  srv.telemetry(input.BrowserInfo),
		CurrentSlide: srv.telemetry(input.CurrentSlide),
	}
	if hb.IPAddress == nil && input.ClientIP != "" {
		hb.IPAddress = srv.telemetry(&input.ClientIP)
	}

	var (
		prior     *entity.Device
		device    *entity.Device
		delivered *entity.PendingCommand
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		existing, err := deviceRepo.FindByIDForUpdate(ctx, deviceID)
		if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(err, "failed to lock device")
		}
		prior = existing

		device, err = deviceRepo.UpsertHeartbeat(ctx, hb)
		if err != nil {
			return errors.Wrap(err, "failed to record heartbeat")
		}

		delivered, err = claimPendingCommand(ctx, deviceRepo, device)

		return err
	})
	if err != nil {
		return nil, storeError(err, deviceID, "heartbeat")
	}

	switch {
	case prior == nil:
		srv.log(ctx).Info("Device registered", slog.String("device_id", deviceID))
		srv.events.emit(ctx, service.EventDeviceRegistered, deviceID, "", hb.ReceivedAt)
	case prior.IsDeleted:
		srv.log(ctx).Info("Deleted device reappeared", slog.String("device_id", deviceID))
		srv.events.emit(ctx, service.EventDeviceResurrected, deviceID, "", hb.ReceivedAt)
	}

	if delivered != nil {
		srv.log(ctx).Info("Pending command delivered",
			slog.String("device_id", deviceID),
			slog.String("command", delivered.Type.String()),
		)
		srv.events.emit(ctx, service.EventCommandDelivered, deviceID, delivered.Type.String(), hb.ReceivedAt)
	}

	return &usecase.HeartbeatResult{
		PendingCommand: delivered,
		Device:         device,
	}, nil
}

// telemetry caps a reported value; nil stays nil so the stored value is kept.
func (srv *heartbeatService) telemetry(value *string) *string {
	if value == nil {
		return nil
	}

	truncated := util.TruncateRunes(*value, srv.maxTelemetryLength)

	return &truncated
}
