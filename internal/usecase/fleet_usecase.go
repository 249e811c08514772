package usecase

import (
	"context"
	"time"

	"displayfleet/internal/domain/entity"
	"displayfleet/internal/domain/liveness"
)

// FleetFilter narrows a fleet listing
type FleetFilter struct {
	IncludeDeleted bool
	// Status keeps only devices in the given derived state; empty keeps all.
	Status liveness.Status
}

// DeviceStatus is a device with its derived liveness at query time
type DeviceStatus struct {
	Device      *entity.Device
	Status      liveness.Status
	DisplayName string
	LastSeenAgo time.Duration
}

// FleetSummary counts the fleet for the dashboard header
type FleetSummary struct {
	Total       int
	Online      int
	Offline     int
	Pinned      int
	Deleted     int
	Threshold   time.Duration
	GeneratedAt time.Time
}

// FleetUsecase defines the dashboard's view of the fleet
type FleetUsecase interface {
	// ListFleet returns devices with liveness, pinned first, newest heartbeat next.
	ListFleet(ctx context.Context, filter FleetFilter) ([]*DeviceStatus, error)

	// GetDevice returns one device, deleted or not.
	GetDevice(ctx context.Context, deviceID string) (*DeviceStatus, error)

	// Summary counts visible devices by state.
	Summary(ctx context.Context) (*FleetSummary, error)

	// UpdateMeta renames or pins a device. An empty FriendlyName clears the label.
	UpdateMeta(ctx context.Context, deviceID string, patch *entity.MetaPatch) (*DeviceStatus, error)

	// DeleteDevice hides a device until its next heartbeat.
	DeleteDevice(ctx context.Context, deviceID string) error
}
