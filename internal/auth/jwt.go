// Package auth verifies bearer tokens issued by the external identity
// provider. The server never issues tokens itself; it only checks the
// signature, issuer and expiry and extracts the identity claims.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity fields the provider puts in a token.
type Claims struct {
	Email          string
	Name           string
	ProfilePicture *string
}

// JWTVerifier validates HS256 bearer tokens from the identity provider.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a verifier.
// secret must be at least 32 characters for HS256 security.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// tokenClaims extends the standard JWT claims with the provider's profile fields.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Picture *string `json:"picture,omitempty"`
}

// Verify parses and validates a bearer token and returns the identity claims.
func (v *JWTVerifier) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Issuer != v.issuer {
		return nil, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("token has no email claim")
	}

	return &Claims{
		Email:          claims.Email,
		Name:           claims.Name,
		ProfilePicture: claims.Picture,
	}, nil
}

// Sign issues a token with the given claims and TTL. The server itself only
// verifies tokens; signing exists for tests and local tooling.
func (v *JWTVerifier) Sign(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	tc := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.ProfilePicture,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
