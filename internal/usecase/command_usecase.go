package usecase

import (
	"context"

	"displayfleet/internal/domain/entity"
)

// CommandUsecase defines operator-issued one-shot commands and their pickup by devices
type CommandUsecase interface {
	// IssueCommand stages cmd for the device, replacing any undelivered command.
	IssueCommand(ctx context.Context, deviceID string, cmd entity.CommandType) (*entity.PendingCommand, error)

	// TriggerRefresh stages a refresh command.
	TriggerRefresh(ctx context.Context, deviceID string) (*entity.PendingCommand, error)

	// CheckCommand takes the pending command without recording a heartbeat.
	// It returns nil when nothing is pending.
	CheckCommand(ctx context.Context, deviceID string) (*entity.PendingCommand, error)
}
