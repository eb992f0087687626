package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")

	// Signing key and default TTL are process-wide, set once at startup.
	signingKey []byte
	defaultTTL time.Duration
)

// Claims is the token payload: the user id plus standard expiry.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Init configures the signing key and the default token lifetime. Must be
// called before GenerateToken / ParseToken.
func Init(secret string, ttlSeconds int) {
	signingKey = []byte(secret)
	defaultTTL = time.Duration(ttlSeconds) * time.Second
}

// GenerateToken issues a signed HS256 token for userID with the default TTL.
func GenerateToken(userID uint) (string, error) {
	return GenerateTokenWithTTL(userID, defaultTTL)
}

// GenerateTokenWithTTL issues a signed HS256 token expiring after ttl.
func GenerateTokenWithTTL(userID uint, ttl time.Duration) (string, error) {
	if len(signingKey) == 0 {
		return "", errors.New("auth: signing key is not configured")
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ParseToken verifies signature and expiry and returns the claims. Any
// failure collapses into ErrTokenInvalid: callers never learn why a token
// was rejected.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
