package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// how long a minted client token stays valid. Short-lived on purpose:
// the TUI mints a fresh one per exchange.
const TokenTTL = 5 * time.Minute

// subject claim identifying this client
const clientSubject = "critique-client"

// mints a short-lived HS256 token from the shared secret. Used when the
// analysis service requires authenticated exchanges.
func MintToken(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("auth secret is empty")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   clientSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// validates a client token against the shared secret
func ValidateToken(secret, tokenString string) error {
	if secret == "" {
		return fmt.Errorf("auth secret is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		return err
	}

	if !token.Valid {
		return fmt.Errorf("invalid token")
	}

	return nil
}
