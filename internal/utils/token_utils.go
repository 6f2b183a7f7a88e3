package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token type tags carried in the "typ" claim. A refresh token must never be
// accepted where an access token is expected and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrWrongTokenType is returned when a token's "typ" claim does not match the
// type the caller expects.
var ErrWrongTokenType = errors.New("wrong token type")

// TokenClaims are the JWT claims carried by both access and refresh tokens:
// the user id as subject plus the token type discriminator.
type TokenClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed JWT of the given type for userID.
func GenerateToken(userID, tokenType, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateToken parses a JWT token string and validates its signature
// and standard claims. It returns the TokenClaims if the token is valid, or an
// error otherwise. Callers must still check the TokenType themselves or use
// ParseAndValidateTokenOfType.
func ParseAndValidateToken(tokenString string, secretKey string) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Reject non-HMAC signing algorithms.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err // This will include errors like token expired, signature invalid, etc.
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}

// ParseAndValidateTokenOfType parses a token and additionally enforces the
// expected "typ" claim.
func ParseAndValidateTokenOfType(tokenString, secretKey, expectedType string) (*TokenClaims, error) {
	claims, err := ParseAndValidateToken(tokenString, secretKey)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("expected %s token: %w", expectedType, ErrWrongTokenType)
	}
	return claims, nil
}
