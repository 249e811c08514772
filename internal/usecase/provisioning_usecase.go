package usecase

import "context"

// SetupQR is a rendered provisioning code for one display
type SetupQR struct {
	DeviceID string
	URL      string
	PNG      []byte
}

// ProvisioningUsecase defines how new displays are pointed at their identity
type ProvisioningUsecase interface {
	// SetupQR renders the player URL for deviceID. An empty deviceID allocates a new one.
	SetupQR(ctx context.Context, deviceID string) (*SetupQR, error)
}
