package service

import (
	"context"
	"time"
)

// FleetEventType names a fleet lifecycle event.
type FleetEventType string

const (
	// EventDeviceRegistered is emitted on the first heartbeat of a new device id.
	EventDeviceRegistered FleetEventType = "device.registered"
	// EventDeviceResurrected is emitted when a soft-deleted device heartbeats again.
	EventDeviceResurrected FleetEventType = "device.resurrected"
	// EventDeviceDeleted is emitted when an operator hides a device.
	EventDeviceDeleted FleetEventType = "device.deleted"
	// EventCommandIssued is emitted when an operator stages a command.
	EventCommandIssued FleetEventType = "command.issued"
	// EventCommandDelivered is emitted when a pending command is handed to its device.
	EventCommandDelivered FleetEventType = "command.delivered"
)

// FleetEvent is a notification about a change in the fleet, published after commit.
type FleetEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       FleetEventType `json:"type"`
	DeviceID   string         `json:"device_id"`
	Command    string         `json:"command,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing fleet events to a message bus
type EventPublisher interface {
	// PublishFleetEvent publishes a fleet event for downstream consumers
	PublishFleetEvent(ctx context.Context, event *FleetEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
