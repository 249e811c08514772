// Package handler contains the echo handlers for the device and dashboard endpoints.
package handler

import (
	"net/http"

	"displayfleet/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
