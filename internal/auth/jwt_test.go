package auth

import (
	"testing"
	"time"

	"chefpay/internal/core"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-12345")

func TestJWTFlow(t *testing.T) {
	in := core.Principal{
		UserID:    uuid.New().String(),
		Email:     "manager@example.com",
		Role:      core.RoleManager,
		CanteenID: 7,
	}

	token, err := GenerateToken(testSecret, in)
	require.NoError(t, err)

	out, err := ValidateToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, in, out)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, core.Principal{UserID: "u1", Role: core.RoleAdmin})
	require.NoError(t, err)

	_, err = ValidateToken([]byte("other-secret"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"userID": "u1",
		"role":   core.RoleAdmin,
		"exp":    time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_RequiresSecretAndUser(t *testing.T) {
	_, err := GenerateToken(nil, core.Principal{UserID: "u1"})
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = GenerateToken(testSecret, core.Principal{})
	assert.Error(t, err)
}
