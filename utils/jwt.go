package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type JWTClaim struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.StandardClaims
}

// TokenID is the jti claim, used to revoke a single token.
func (c *JWTClaim) TokenID() string { return c.StandardClaims.Id }

// Remaining is how long the token stays valid after now.
func (c *JWTClaim) Remaining(now time.Time) time.Duration {
	return time.Unix(c.ExpiresAt, 0).Sub(now)
}

type TokenIssuer struct {
	key []byte
	ttl time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{key: []byte(secret), ttl: ttl}
}

func (ti *TokenIssuer) GenerateToken(id string, role string) (string, *JWTClaim, error) {
	now := time.Now()
	claims := &JWTClaim{
		ID:   id,
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ti.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.key)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (ti *TokenIssuer) ValidateToken(signedToken string) (*JWTClaim, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return ti.key, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*JWTClaim)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
