package auth

import (
	"errors"
	"time"

	"chefpay/internal/core"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = errors.New("jwt secret not set")
	ErrInvalidToken  = errors.New("invalid token")
)

// TokenTTL is the lifetime of tokens minted by GenerateToken.
const TokenTTL = 24 * time.Hour

// GenerateToken signs a dashboard token for p. Tokens are normally issued by the
// login service; this is used by tests and local tooling.
func GenerateToken(secret []byte, p core.Principal) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	if p.UserID == "" {
		return "", errors.New("empty userID passed to GenerateToken")
	}

	claims := jwt.MapClaims{
		"userID":    p.UserID,
		"email":     p.Email,
		"role":      p.Role,
		"canteenID": p.CanteenID,
		"exp":       time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken verifies an HS256 token and returns the principal it carries.
func ValidateToken(secret []byte, tokenString string) (core.Principal, error) {
	if len(secret) == 0 {
		return core.Principal{}, ErrMissingSecret
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return core.Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return core.Principal{}, errors.New("invalid token claims")
	}

	p := core.Principal{}
	p.UserID, _ = claims["userID"].(string)
	p.Email, _ = claims["email"].(string)
	p.Role, _ = claims["role"].(string)

	// numeric claims decode as float64
	if id, ok := claims["canteenID"].(float64); ok {
		p.CanteenID = int(id)
	}

	if p.UserID == "" {
		return core.Principal{}, ErrInvalidToken
	}

	return p, nil
}
