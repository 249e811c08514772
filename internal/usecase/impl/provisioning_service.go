package impl

import (
	"context"
	"log/slog"

	deliverycontext "displayfleet/internal/delivery/context"
	"displayfleet/internal/domain/service"
	"displayfleet/internal/errors"
	"displayfleet/internal/usecase"

	"github.com/google/uuid"
)

type provisioningService struct {
	qrService service.QRCodeService
	logger    *slog.Logger
	newID     func() string
}

// NewProvisioningService is the constructor for provisioningService.
func NewProvisioningService(qrService service.QRCodeService, logger *slog.Logger) usecase.ProvisioningUsecase {
	return &provisioningService{
		qrService: qrService,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// SetupQR renders the setup code. The device record itself is created by the first heartbeat.
func (srv *provisioningService) SetupQR(ctx context.Context, deviceID string) (*usecase.SetupQR, error) {
	raw := deviceID
	if raw == "" {
		raw = srv.newID()
	}

	id, err := normalizeDeviceID(raw)
	if err != nil {
		return nil, err
	}

	setupURL, err := srv.qrService.SetupURL(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build setup URL")
	}

	png, err := srv.qrService.GenerateSetupQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate setup QR code")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Setup QR generated", slog.String("device_id", id))

	return &usecase.SetupQR{
		DeviceID: id,
		URL:      setupURL,
		PNG:      png,
	}, nil
}
