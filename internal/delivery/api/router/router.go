// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"displayfleet/internal/delivery/api/middleware"
	"displayfleet/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HeartbeatHandler *handler.HeartbeatHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	heartbeatHandler *handler.HeartbeatHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		heartbeatHandler: params.HeartbeatHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Displays authenticate by device id only
	heartbeatGroup := apiV1.Group("/heartbeat")
	{
		heartbeatGroup.POST("", r.heartbeatHandler.Heartbeat)
		heartbeatGroup.POST("/:id/command", r.heartbeatHandler.CheckCommand)
	}

	// Dashboard reads need any valid token
	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.GET("/summary", r.deviceHandler.GetSummary)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.GET("/:id/setup-qr", r.deviceHandler.SetupQR)
	}

	// Mutations require the operator role
	operatorGroup := devicesGroup.Group("")
	operatorGroup.Use(r.authMiddleware.RequireOperator)
	{
		operatorGroup.POST("/provision", r.deviceHandler.Provision)
		operatorGroup.POST("/:id/meta", r.deviceHandler.UpdateMeta)
		operatorGroup.PATCH("/:id", r.deviceHandler.UpdateMeta)
		operatorGroup.POST("/:id/delete", r.deviceHandler.DeleteDevice)
		operatorGroup.DELETE("/:id", r.deviceHandler.DeleteDevice)
		operatorGroup.POST("/:id/refresh", r.deviceHandler.TriggerRefresh)
		operatorGroup.POST("/:id/commands", r.deviceHandler.IssueCommand)
	}
}
