package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	principalID := uuid.New()

	token, err := tm.CreateToken(principalID, "a@x.com", "opticien")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, principalID.String(), claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "opticien", claims.UserType)
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.CreateToken(uuid.New(), "a@x.com", "opticien")
	require.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.CreateToken(uuid.New(), "a@x.com", "opticien")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.CreateToken(uuid.New(), "a@x.com", "opticien")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.ValidateToken(tampered)
	assert.Error(t, err)
}
