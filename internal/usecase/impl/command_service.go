package impl

import (
	"context"
	"log/slog"
	"time"

	"displayfleet/config"
	deliverycontext "displayfleet/internal/delivery/context"
	"displayfleet/internal/domain/entity"
	domainerrors "displayfleet/internal/domain/errors"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/domain/service"
	"displayfleet/internal/usecase"

	"go.uber.org/fx"
)

// CommandServiceParams holds dependencies for the command service, injected by Fx
type CommandServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DeviceRepo repository.DeviceRepository
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

type commandService struct {
	txManager  repository.TransactionManager
	deviceRepo repository.DeviceRepository
	events     eventEmitter
	allowed    entity.CommandTypes
	logger     *slog.Logger
	now        func() time.Time
}

// NewCommandService is the constructor for commandService.
// Without configured command types only refresh is accepted.
func NewCommandService(params CommandServiceParams) usecase.CommandUsecase {
	allowed := entity.CommandTypes{entity.CommandRefresh}
	if params.Config != nil && params.Config.Fleet != nil && len(params.Config.Fleet.CommandTypes) > 0 {
		allowed = entity.CommandTypesFromStrings(params.Config.Fleet.CommandTypes)
	}

	return &commandService{
		txManager:  params.TxManager,
		deviceRepo: params.DeviceRepo,
		events:     eventEmitter{publisher: params.Publisher, logger: params.Logger},
		allowed:    allowed,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *commandService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueCommand stages cmd, overwriting any command the device has not picked up yet.
func (srv *commandService) IssueCommand(ctx context.Context, deviceID string, cmd entity.CommandType) (*entity.PendingCommand, error) {
	id, err := normalizeDeviceID(deviceID)
	if err != nil {
		return nil, err
	}
	if !srv.allowed.Contains(cmd) {
		return nil, domainerrors.ErrUnsupportedCommand.WithDetails(cmd.String())
	}

	pending := &entity.PendingCommand{
		Type:     cmd,
		IssuedAt: timestamp(srv.now),
	}
	if err := srv.deviceRepo.SetPendingCommand(ctx, id, pending); err != nil {
		return nil, storeError(err, id, "issue command")
	}

	srv.log(ctx).Info("Command issued",
		slog.String("device_id", id),
		slog.String("command", cmd.String()),
	)
	srv.events.emit(ctx, service.EventCommandIssued, id, cmd.String(), pending.IssuedAt)

	return pending, nil
}

// TriggerRefresh stages a refresh command.
func (srv *commandService) TriggerRefresh(ctx context.Context, deviceID string) (*entity.PendingCommand, error) {
	return srv.IssueCommand(ctx, deviceID, entity.CommandRefresh)
}

// CheckCommand takes the pending command, if any, without touching liveness.
func (srv *commandService) CheckCommand(ctx context.Context, deviceID string) (*entity.PendingCommand, error) {
	id, err := normalizeDeviceID(deviceID)
	if err != nil {
		return nil, err
	}

	var delivered *entity.PendingCommand

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		device, err := deviceRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		delivered, err = claimPendingCommand(ctx, deviceRepo, device)

		return err
	})
	if err != nil {
		return nil, storeError(err, id, "check command")
	}

	if delivered != nil {
		srv.log(ctx).Info("Pending command delivered",
			slog.String("device_id", id),
			slog.String("command", delivered.Type.String()),
		)
		srv.events.emit(ctx, service.EventCommandDelivered, id, delivered.Type.String(), timestamp(srv.now))
	}

	return delivered, nil
}
