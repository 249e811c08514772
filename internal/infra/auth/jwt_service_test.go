package auth

import (
	"testing"
	"time"

	"displayfleet/config"
	"displayfleet/internal/domain/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestNewJWTService_ProductionSecretLength(t *testing.T) {
	cfg := newTestConfig("short")
	cfg.Env.Env = constants.EnvProduction
	_, err := NewJWTService(cfg)
	require.Error(t, err)

	cfg.SecretKey.Access = "0123456789abcdef0123456789abcdef"
	_, err = NewJWTService(cfg)
	require.NoError(t, err)

	cfg = newTestConfig("short")
	cfg.Env.Env = constants.EnvDevelop
	_, err = NewJWTService(cfg)
	require.NoError(t, err)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.GenerateToken("nurse-station-3", []string{"operator"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "nurse-station-3", claims.Subject)
	assert.Equal(t, []string{"operator"}, claims.Roles)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_GenerateToken_RequiresSubject(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	_, err = svc.GenerateToken("", nil)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken("ops", []string{"operator"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("ops", []string{"operator"})
	require.NoError(t, err)

	impl.now = func() time.Time { return issued.Add(defaultAccessTTL + time.Minute) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "ops", "exp": time.Now().Add(time.Hour).Unix()})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
