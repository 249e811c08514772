// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"displayfleet/internal/domain/entity"
	"displayfleet/internal/errors"
)

// ErrDeviceNotFound is returned when no record exists for a device id.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the persistence operations of the fleet registry.
// Implementations never read the wall clock; all timestamps are supplied by the caller.
type DeviceRepository interface {
	// UpsertHeartbeat creates the device on first contact or refreshes it.
	// last_heartbeat never moves backwards, reported_status becomes online,
	// the soft-delete flag is cleared and only supplied telemetry fields are written.
	// It returns the stored device after the write.
	UpsertHeartbeat(ctx context.Context, hb *entity.Heartbeat) (*entity.Device, error)

	// FindByID returns a device regardless of its delete flag.
	FindByID(ctx context.Context, deviceID string) (*entity.Device, error)

	// FindByIDForUpdate is FindByID holding a row lock until the surrounding transaction ends.
	// Outside a transaction it behaves like FindByID.
	FindByIDForUpdate(ctx context.Context, deviceID string) (*entity.Device, error)

	// List returns devices ordered by pinned first, newest heartbeat, then device id.
	// Soft-deleted devices are skipped unless includeDeleted is set.
	List(ctx context.Context, includeDeleted bool) ([]*entity.Device, error)

	// UpdateMeta applies a partial patch of operator fields and returns the updated device.
	// Returns ErrDeviceNotFound for unknown ids.
	UpdateMeta(ctx context.Context, deviceID string, patch *entity.MetaPatch) (*entity.Device, error)

	// SoftDelete hides a device from default listings. It reports whether the device exists.
	SoftDelete(ctx context.Context, deviceID string, at time.Time) (bool, error)

	// SetPendingCommand stages a command, replacing any undelivered one.
	// Returns ErrDeviceNotFound for unknown ids.
	SetPendingCommand(ctx context.Context, deviceID string, cmd *entity.PendingCommand) error

	// ClearPendingCommand removes the pending command only if it is still the one issued at issuedAt.
	// It reports whether a command was cleared.
	ClearPendingCommand(ctx context.Context, deviceID string, issuedAt time.Time) (bool, error)
}
