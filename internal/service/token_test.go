package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := service.NewTokenService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "lifter@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "lifter@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	token, err := service.NewTokenService("other-secret").GenerateToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = service.NewTokenService("test-secret").ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = service.NewTokenService("test-secret").ValidateToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
