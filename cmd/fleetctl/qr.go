package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"displayfleet/config"
	"displayfleet/internal/infra/qrcode"
	"displayfleet/internal/usecase"
	"displayfleet/internal/usecase/impl"

	"github.com/pkg/errors"
)

// runQR renders the setup code for deviceID and writes it to output.
func runQR(ctx context.Context, deviceID, output string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	qr, written, err := writeSetupQR(ctx, cfg, deviceID, output)
	if err != nil {
		return err
	}

	fmt.Printf("%s\t%s\t%s\n", qr.DeviceID, qr.URL, written)

	return nil
}

// writeSetupQR renders the code and writes the PNG, defaulting output to <device>.png.
// It returns the rendered code and the path written.
func writeSetupQR(ctx context.Context, cfg *config.Config, deviceID, output string) (*usecase.SetupQR, string, error) {
	qrService, err := qrcode.NewQRCodeService(cfg.QRCode.PlayerURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
	if err != nil {
		return nil, "", err
	}

	provisioning := impl.NewProvisioningService(qrService, slog.New(slog.NewTextHandler(io.Discard, nil)))
	qr, err := provisioning.SetupQR(ctx, deviceID)
	if err != nil {
		return nil, "", err
	}

	if output == "" {
		output = qr.DeviceID + ".png"
	}
	if err := os.WriteFile(output, qr.PNG, 0o600); err != nil {
		return nil, "", errors.Wrapf(err, "failed to write %s", output)
	}

	return qr, output, nil
}
