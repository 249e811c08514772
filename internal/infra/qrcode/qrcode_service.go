package qrcode

import (
	"net/url"

	"displayfleet/internal/domain/service"
	"displayfleet/internal/errors"

	"github.com/skip2/go-qrcode"
)

// deviceIDParam is the query parameter the player reads its identity from.
const deviceIDParam = "device_id"

type qrcodeService struct {
	playerURL            *url.URL
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(playerURL string, size int, errorCorrectionLevel string) (service.QRCodeService, error) {
	parsed, err := url.Parse(playerURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid player URL")
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("player URL must be absolute: %q", playerURL)
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		playerURL:            parsed,
		size:                 size,
		errorCorrectionLevel: level,
	}, nil
}

// SetupURL returns the player URL with the device id attached.
func (s *qrcodeService) SetupURL(deviceID string) (string, error) {
	if deviceID == "" {
		return "", errors.New("device id is required")
	}

	u := *s.playerURL
	q := u.Query()
	q.Set(deviceIDParam, deviceID)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// GenerateSetupQR renders the setup URL as a PNG QR code.
func (s *qrcodeService) GenerateSetupQR(deviceID string) ([]byte, error) {
	content, err := s.SetupURL(deviceID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
