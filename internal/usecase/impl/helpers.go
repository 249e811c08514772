// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "displayfleet/internal/delivery/context"
	"displayfleet/internal/domain/entity"
	domainerrors "displayfleet/internal/domain/errors"
	"displayfleet/internal/domain/repository"
	"displayfleet/internal/domain/service"
	"displayfleet/internal/errors"
)

// timestamp returns now in UTC at microsecond precision, the finest resolution every store keeps.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}

// normalizeDeviceID trims the raw id and checks it against the accepted charset.
func normalizeDeviceID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if !entity.IsValidDeviceID(id) {
		return "", domainerrors.ErrInvalidArgument.WithDetails("device_id must be 1-128 characters of [A-Za-z0-9._:-]")
	}

	return id, nil
}

// storeError maps repository failures onto application errors.
// AppErrors raised by the store pass through unchanged.
func storeError(err error, deviceID, op string) error {
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound.WithDetails(deviceID)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, op)
	}

	return domainerrors.NewStoreUnavailableError(err, op)
}

// claimPendingCommand hands the device's pending command to exactly one caller.
// It must run inside a transaction that has locked the device row.
func claimPendingCommand(ctx context.Context, repo repository.DeviceRepository, device *entity.Device) (*entity.PendingCommand, error) {
	if device == nil || device.PendingCommand == nil {
		return nil, nil
	}

	cmd := *device.PendingCommand
	cleared, err := repo.ClearPendingCommand(ctx, device.DeviceID, cmd.IssuedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear pending command")
	}
	if !cleared {
		return nil, nil
	}
	device.PendingCommand = nil

	return &cmd, nil
}

// eventEmitter publishes fleet events after the state change is committed.
// Publish failures are logged and never fail the request.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (e eventEmitter) emit(ctx context.Context, eventType service.FleetEventType, deviceID, command string, at time.Time) {
	if e.publisher == nil {
		return
	}

	event := &service.FleetEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		DeviceID:   deviceID,
		Command:    command,
		OccurredAt: at,
	}
	if err := e.publisher.PublishFleetEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish fleet event",
			slog.String("type", string(eventType)),
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)
	}
}
