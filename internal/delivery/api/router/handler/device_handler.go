package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"displayfleet/internal/delivery/api/response"
	"displayfleet/internal/domain/entity"
	"displayfleet/internal/domain/liveness"
	"displayfleet/internal/usecase"
	"displayfleet/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	FleetUC        usecase.FleetUsecase
	CommandUC      usecase.CommandUsecase
	ProvisioningUC usecase.ProvisioningUsecase
	Logger         *slog.Logger
}

// DeviceHandler serves the dashboard's fleet endpoints
type DeviceHandler struct {
	fleetUC        usecase.FleetUsecase
	commandUC      usecase.CommandUsecase
	provisioningUC usecase.ProvisioningUsecase
	logger         *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		fleetUC:        params.FleetUC,
		commandUC:      params.CommandUC,
		provisioningUC: params.ProvisioningUC,
		logger:         params.Logger,
	}
}

// ListDevicesQuery filters the fleet listing
type ListDevicesQuery struct {
	IncludeDeleted bool   `query:"include_deleted"`
	Status         string `query:"status" validate:"omitempty,oneof=online offline"`
}

// UpdateMetaRequest renames or pins a device; omitted fields are left alone
type UpdateMetaRequest struct {
	FriendlyName *string `json:"friendly_name,omitempty"`
	IsPinned     *bool   `json:"is_pinned,omitempty"`
}

// IssueCommandRequest stages a command by type
type IssueCommandRequest struct {
	Type string `json:"type" validate:"required"`
}

// DeviceView is a device as the dashboard renders it
type DeviceView struct {
	*entity.Device
	Online          bool            `json:"online"`
	Status          liveness.Status `json:"status"`
	DisplayName     string          `json:"display_name"`
	LastSeenSeconds int64           `json:"last_seen_seconds"`
	LastSeen        string          `json:"last_seen"`
}

// SummaryView is the dashboard header
type SummaryView struct {
	Total            int       `json:"total"`
	Online           int       `json:"online"`
	Offline          int       `json:"offline"`
	Pinned           int       `json:"pinned"`
	Deleted          int       `json:"deleted"`
	ThresholdSeconds int64     `json:"threshold_seconds"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// SetupView describes a provisioning code
type SetupView struct {
	DeviceID string `json:"device_id"`
	URL      string `json:"url"`
}

func newDeviceView(status *usecase.DeviceStatus) *DeviceView {
	return &DeviceView{
		Device:          status.Device,
		Online:          status.Status == liveness.StatusOnline,
		Status:          status.Status,
		DisplayName:     status.DisplayName,
		LastSeenSeconds: int64(status.LastSeenAgo / time.Second),
		LastSeen:        util.FormatDuration(status.LastSeenAgo),
	}
}

// ListDevices returns the fleet with liveness, pinned first then most recent heartbeat.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	var query ListDevicesQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return err
	}

	statuses, err := h.fleetUC.ListFleet(c.Request().Context(), usecase.FleetFilter{
		IncludeDeleted: query.IncludeDeleted,
		Status:         liveness.Status(query.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*DeviceView, 0, len(statuses))
	for _, status := range statuses {
		views = append(views, newDeviceView(status))
	}

	return response.Success(c, http.StatusOK, views)
}

// GetSummary returns fleet counts.
func (h *DeviceHandler) GetSummary(c echo.Context) error {
	summary, err := h.fleetUC.Summary(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SummaryView{
		Total:            summary.Total,
		Online:           summary.Online,
		Offline:          summary.Offline,
		Pinned:           summary.Pinned,
		Deleted:          summary.Deleted,
		ThresholdSeconds: int64(summary.Threshold / time.Second),
		GeneratedAt:      summary.GeneratedAt,
	})
}

// GetDevice returns one device, including soft-deleted ones.
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	status, err := h.fleetUC.GetDevice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDeviceView(status))
}

// UpdateMeta changes the friendly name or pin flag.
func (h *DeviceHandler) UpdateMeta(c echo.Context) error {
	var req UpdateMetaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid metadata body")
	}

	status, err := h.fleetUC.UpdateMeta(c.Request().Context(), c.Param("id"), &entity.MetaPatch{
		FriendlyName: req.FriendlyName,
		IsPinned:     req.IsPinned,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDeviceView(status))
}

// DeleteDevice hides a device until it next checks in.
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	deviceID := strings.TrimSpace(c.Param("id"))
	if err := h.fleetUC.DeleteDevice(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"device_id":  deviceID,
		"is_deleted": true,
	})
}

// TriggerRefresh stages a refresh for the device's next poll.
func (h *DeviceHandler) TriggerRefresh(c echo.Context) error {
	cmd, err := h.commandUC.TriggerRefresh(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, cmd)
}

// IssueCommand stages a command of any configured type.
func (h *DeviceHandler) IssueCommand(c echo.Context) error {
	var req IssueCommandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid command body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := h.commandUC.IssueCommand(c.Request().Context(), c.Param("id"), entity.CommandType(req.Type))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, cmd)
}

// SetupQR renders the provisioning QR code as PNG, or its URL with ?format=json.
func (h *DeviceHandler) SetupQR(c echo.Context) error {
	qr, err := h.provisioningUC.SetupQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == "json" {
		return response.Success(c, http.StatusOK, &SetupView{DeviceID: qr.DeviceID, URL: qr.URL})
	}

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}

// Provision allocates an identifier for a display that has none yet.
func (h *DeviceHandler) Provision(c echo.Context) error {
	qr, err := h.provisioningUC.SetupQR(c.Request().Context(), "")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &SetupView{DeviceID: qr.DeviceID, URL: qr.URL})
}
