package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"displayfleet/config"
	deliverycontext "displayfleet/internal/delivery/context"
	domainerrors "displayfleet/internal/domain/errors"
	"displayfleet/internal/domain/service"
	"displayfleet/internal/errors"
	mockService "displayfleet/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService) {
	tokenSvc := mockService.NewMockTokenService(t)
	cfg := &config.Config{Auth: &config.AuthConfig{OperatorRole: "operator"}}

	return NewAuthMiddleware(tokenSvc, cfg), tokenSvc
}

func serve(handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func ok(c echo.Context) error {
	claims, _ := deliverycontext.GetOperator(c)

	return c.String(http.StatusOK, claims.Subject)
}

func TestAuthenticate(t *testing.T) {
	m, tokenSvc := newAuthMiddleware(t)

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		Roles:            []string{"operator"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "nurse-station-3"},
	}, nil)
	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	rec := serve(m.Authenticate(ok), "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nurse-station-3", rec.Body.String())

	rec = serve(m.Authenticate(ok), "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")

	rec = serve(m.Authenticate(ok), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")

	rec = serve(m.Authenticate(ok), "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireOperator(t *testing.T) {
	m, tokenSvc := newAuthMiddleware(t)

	tokenSvc.EXPECT().ValidateToken("viewer").Return(&service.Claims{Roles: []string{"viewer"}}, nil)
	tokenSvc.EXPECT().ValidateToken("operator").Return(&service.Claims{Roles: []string{"viewer", "operator"}}, nil)

	chain := m.Authenticate(m.RequireOperator(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}))

	assert.Equal(t, http.StatusForbidden, serve(chain, "Bearer viewer").Code)
	assert.Equal(t, http.StatusNoContent, serve(chain, "Bearer operator").Code)

	// Without Authenticate there are no claims at all.
	assert.Equal(t, http.StatusForbidden, serve(m.RequireOperator(ok), "").Code)
}

func TestHandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "app error with details",
			err:      errors.Wrap(domainerrors.ErrDeviceNotFound.WithDetails("tv-09"), "get device"),
			wantCode: http.StatusNotFound,
			wantBody: `"code":"DEVICE_NOT_FOUND"`,
		},
		{
			name:     "store unavailable hides cause",
			err:      domainerrors.NewStoreUnavailableError(errors.New("dial tcp 10.0.0.2:5432"), "heartbeat"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `"code":"STORE_UNAVAILABLE"`,
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed),
			wantCode: http.StatusMethodNotAllowed,
			wantBody: `"code":"HTTP_ERROR"`,
		},
		{
			name:     "unknown error",
			err:      errors.New("nil map"),
			wantCode: http.StatusInternalServerError,
			wantBody: `"code":"INTERNAL_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "10.0.0.2")
		})
	}
}
