package usecase

import (
	"context"

	"displayfleet/internal/domain/entity"
)

// HeartbeatInput is what a display sends on each periodic call.
// Nil telemetry fields keep the stored value.
type HeartbeatInput struct {
	DeviceID     string
	IPAddress    *string
	BrowserInfo  *string
	CurrentSlide *string
	// ClientIP is the transport-level address, used when IPAddress is not sent.
	ClientIP string
}

// HeartbeatResult is returned to the device.
type HeartbeatResult struct {
	// PendingCommand is the command handed to this caller, nil when none.
	PendingCommand *entity.PendingCommand
	Device         *entity.Device
}

// HeartbeatUsecase defines the device check-in flow
type HeartbeatUsecase interface {
	// Heartbeat registers or refreshes the device, resurrects it if soft-deleted
	// and takes its pending command, if any.
	Heartbeat(ctx context.Context, input *HeartbeatInput) (*HeartbeatResult, error)
}
