package service

// QRCodeService defines the interface for provisioning QR code generation
type QRCodeService interface {
	// GenerateSetupQR renders a PNG QR code that points a fresh player at its device id
	GenerateSetupQR(deviceID string) ([]byte, error)

	// SetupURL returns the URL encoded into the setup QR code
	SetupURL(deviceID string) (string, error)
}
