package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWT = struct {
	ACCESS_COOKIE_NAME  string
	REFRESH_COOKIE_NAME string
}{
	ACCESS_COOKIE_NAME:  "access_token",
	REFRESH_COOKIE_NAME: "refresh_token",
}

// Token scopes. Only authentication tokens open protected endpoints.
const (
	ScopeAuthentication = "authentication"
	ScopeRefresh        = "refresh"
)

// ErrInvalidToken covers malformed, expired and wrongly signed tokens
var ErrInvalidToken = errors.New("invalid token")

type JWTClaims struct {
	UserID            string `json:"userId"`
	Email             string `json:"email"`
	Kind              string `json:"kind"`
	DeviceFingerprint string `json:"deviceFingerprint"`
	Scope             string `json:"scope"`
	TokenType         string `json:"tokenType"`
	jwt.RegisteredClaims
}

type JWTRefreshResponse struct {
	Expiry  time.Time `json:"expiry"`
	Refresh string    `json:"refresh"`
}

// NewJWTClaims builds claims for user bound to one device fingerprint
func NewJWTClaims(user User, fingerprint, scope, tokenType string, expiry time.Time) JWTClaims {
	return JWTClaims{
		UserID:            user.UserID,
		Email:             user.Email,
		Kind:              user.Kind,
		DeviceFingerprint: fingerprint,
		Scope:             scope,
		TokenType:         tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

// SignJWT signs claims with HS256
func SignJWT(claims JWTClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateJWTToken parses an HS256 token and checks its signature and expiry
func ValidateJWTToken(tokenString string, secret string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
