package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// GenerateToken signs a caller session token with HS256. The claims web app mints the
// real session tokens; this is used by tests.
func GenerateToken(claims *CallerClaims, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(duration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretKey))
}

// ParseToken parses and validates an HS256 caller session token using secretKey.
// Tokens signed with any other algorithm are rejected.
func ParseToken(tokenString string, secretKey string) (*CallerClaims, error) {
	claims := &CallerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
