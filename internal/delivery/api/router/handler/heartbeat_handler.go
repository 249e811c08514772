package handler

import (
	"log/slog"
	"net/http"
	"time"

	"displayfleet/internal/delivery/api/response"
	"displayfleet/internal/domain/entity"
	"displayfleet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeartbeatHandlerParams holds dependencies for HeartbeatHandler, injected by Fx.
type HeartbeatHandlerParams struct {
	fx.In

	HeartbeatUC usecase.HeartbeatUsecase
	CommandUC   usecase.CommandUsecase
	Logger      *slog.Logger
}

// HeartbeatHandler serves the device-facing check-in endpoints
type HeartbeatHandler struct {
	heartbeatUC usecase.HeartbeatUsecase
	commandUC   usecase.CommandUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// NewHeartbeatHandler is the constructor for HeartbeatHandler
func NewHeartbeatHandler(params HeartbeatHandlerParams) *HeartbeatHandler {
	return &HeartbeatHandler{
		heartbeatUC: params.HeartbeatUC,
		commandUC:   params.CommandUC,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// HeartbeatRequest is the body a display posts on every tick
type HeartbeatRequest struct {
	DeviceID     string  `json:"device_id" validate:"required,deviceid"`
	IPAddress    *string `json:"ip_address,omitempty"`
	BrowserInfo  *string `json:"browser_info,omitempty"`
	CurrentSlide *string `json:"current_slide,omitempty"`
}

// PollResponse is returned to a display by both check-in endpoints
type PollResponse struct {
	PendingCommand *entity.PendingCommand `json:"pending_command"`
	ServerTime     time.Time              `json:"server_time"`
}

// Heartbeat records a check-in and hands back the pending command, if any.
func (h *HeartbeatHandler) Heartbeat(c echo.Context) error {
	var req HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid heartbeat body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.heartbeatUC.Heartbeat(c.Request().Context(), &usecase.HeartbeatInput{
		DeviceID:     req.DeviceID,
		IPAddress:    req.IPAddress,
		BrowserInfo:  req.BrowserInfo,
		CurrentSlide: req.CurrentSlide,
		ClientIP:     c.RealIP(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.poll(result.PendingCommand))
}

// CheckCommand takes the pending command without recording a heartbeat.
func (h *HeartbeatHandler) CheckCommand(c echo.Context) error {
	cmd, err := h.commandUC.CheckCommand(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.poll(cmd))
}

func (h *HeartbeatHandler) poll(cmd *entity.PendingCommand) *PollResponse {
	return &PollResponse{
		PendingCommand: cmd,
		ServerTime:     h.now().UTC(),
	}
}
