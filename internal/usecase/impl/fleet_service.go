package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "displayfleet/internal/delivery/context"
	"displayfleet/internal/domain/entity"
	domainerrors "displayfleet/internal/domain/errors"
	"displayfleet/internal/domain/liveness"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/domain/service"
	"displayfleet/internal/usecase"

	"go.uber.org/fx"
)

// maxFriendlyNameLength matches the friendly_name column.
const maxFriendlyNameLength = 255

// FleetServiceParams holds dependencies for the fleet service, injected by Fx
type FleetServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Evaluator  *liveness.Evaluator
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

type fleetService struct {
	deviceRepo repository.DeviceRepository
	evaluator  *liveness.Evaluator
	events     eventEmitter
	logger     *slog.Logger
	now        func() time.Time
}

// NewFleetService is the constructor for fleetService.
func NewFleetService(params FleetServiceParams) usecase.FleetUsecase {
	evaluator := params.Evaluator
	if evaluator == nil {
		evaluator = liveness.NewEvaluator(liveness.DefaultThreshold)
	}

	return &fleetService{
		deviceRepo: params.DeviceRepo,
		evaluator:  evaluator,
		events:     eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *fleetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *fleetService) describe(device *entity.Device, now time.Time) *usecase.DeviceStatus {
	return &usecase.DeviceStatus{
		Device:      device,
		Status:      srv.evaluator.Status(device, now),
		DisplayName: device.DisplayName(),
		LastSeenAgo: max(now.Sub(device.LastHeartbeat), 0),
	}
}

// ListFleet lists devices in store order with their liveness evaluated once, at the same instant.
func (srv *fleetService) ListFleet(ctx context.Context, filter usecase.FleetFilter) ([]*usecase.DeviceStatus, error) {
	switch filter.Status {
	case "", liveness.StatusOnline, liveness.StatusOffline:
	default:
		return nil, domainerrors.ErrInvalidArgument.WithDetails("status must be online or offline")
	}

	devices, err := srv.deviceRepo.List(ctx, filter.IncludeDeleted)
	if err != nil {
		return nil, storeError(err, "", "list devices")
	}

	now := timestamp(srv.now)
	statuses := make([]*usecase.DeviceStatus, 0, len(devices))
	for _, device := range devices {
		status := srv.describe(device, now)
		if filter.Status != "" && status.Status != filter.Status {
			continue
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// GetDevice returns one device with its liveness.
func (srv *fleetService) GetDevice(ctx context.Context, deviceID string) (*usecase.DeviceStatus, error) {
	id, err := normalizeDeviceID(deviceID)
	if err != nil {
		return nil, err
	}

	device, err := srv.deviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, id, "get device")
	}

	return srv.describe(device, timestamp(srv.now)), nil
}

// Summary counts the fleet. Deleted devices are counted apart and excluded from the other totals.
func (srv *fleetService) Summary(ctx context.Context) (*usecase.FleetSummary, error) {
	devices, err := srv.deviceRepo.List(ctx, true)
	if err != nil {
		return nil, storeError(err, "", "summarize fleet")
	}

	now := timestamp(srv.now)
	summary := &usecase.FleetSummary{
		Threshold:   srv.evaluator.Threshold(),
		GeneratedAt: now,
	}
	for _, device := range devices {
		if device.IsDeleted {
			summary.Deleted++

			continue
		}

		summary.Total++
		if device.IsPinned {
			summary.Pinned++
		}
		if srv.evaluator.Status(device, now) == liveness.StatusOnline {
			summary.Online++
		} else {
			summary.Offline++
		}
	}

	return summary, nil
}

// UpdateMeta renames or pins a device.
func (srv *fleetService) UpdateMeta(ctx context.Context, deviceID string, patch *entity.MetaPatch) (*usecase.DeviceStatus, error) {
	id, err := normalizeDeviceID(deviceID)
	if err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("friendly_name or is_pinned is required")
	}

	normalized := &entity.MetaPatch{
		IsPinned:  patch.IsPinned,
		UpdatedAt: timestamp(srv.now),
	}
	if patch.FriendlyName != nil {
		name := strings.TrimSpace(*patch.FriendlyName)
		if utf8.RuneCountInString(name) > maxFriendlyNameLength {
			return nil, domainerrors.ErrInvalidArgument.WithDetails("friendly_name must be at most 255 characters")
		}
		normalized.FriendlyName = &name
	}

	device, err := srv.deviceRepo.UpdateMeta(ctx, id, normalized)
	if err != nil {
		return nil, storeError(err, id, "update device meta")
	}

	srv.log(ctx).Info("Device metadata updated",
		slog.String("device_id", id),
		slog.String("display_name", device.DisplayName()),
		slog.Bool("is_pinned", device.IsPinned),
	)

	return srv.describe(device, normalized.UpdatedAt), nil
}

// DeleteDevice soft-deletes a device. Deleting an already deleted device succeeds.
func (srv *fleetService) DeleteDevice(ctx context.Context, deviceID string) error {
	id, err := normalizeDeviceID(deviceID)
	if err != nil {
		return err
	}

	at := timestamp(srv.now)
	found, err := srv.deviceRepo.SoftDelete(ctx, id, at)
	if err != nil {
		return storeError(err, id, "delete device")
	}
	if !found {
		return domainerrors.ErrDeviceNotFound.WithDetails(id)
	}

	srv.log(ctx).Info("Device deleted", slog.String("device_id", id))
	srv.events.emit(ctx, service.EventDeviceDeleted, id, "", at)

	return nil
}
