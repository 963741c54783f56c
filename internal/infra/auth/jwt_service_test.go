package auth

import (
	"testing"
	"time"

	"pesantren/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test_access_secret_key_very_long_for_testing"},
		Auth:      &config.AuthConfig{Issuer: "pesantren-test", AccessTokenTTL: time.Minute},
	}
	cfg.Env.ServiceName = "pesantren"

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, jwtService.GetAccessTokenDuration())

	userID := uuid.New()
	roles := []string{"student", "operator"}

	accessToken, err := jwtService.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "pesantren-test", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	issuer := svc.(*jwtService)
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := issuer.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	validator, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "another_secret_key_that_does_not_match"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	wrongType := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uuid.NewString(),
		"type": "refresh",
		"iss":  "pesantren-test",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	signed, err := wrongType.SignedString([]byte(newTestConfig().SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}
