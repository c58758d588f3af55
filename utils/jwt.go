package utils

import (
	"errors"
	"time"

	"sevagram/models"

	"github.com/golang-jwt/jwt"
)

// TokenClaims are the identity claims carried by a bearer token.
type TokenClaims struct {
	Role  models.Role `json:"role"`
	Email string      `json:"email"`
	jwt.StandardClaims
}

// TokenIssuer signs and validates HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed JWT for the given user. The token expires after the issuer's ttl.
func (t *TokenIssuer) GenerateToken(user models.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Role:  user.Role,
		Email: user.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ValidateToken parses and validates a token string and returns its claims.
func (t *TokenIssuer) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	return claims, nil
}
