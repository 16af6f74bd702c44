package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams   = errors.New("invalid params for generating JWT token")
	ErrEmptyTokenSubject    = errors.New("empty subject in JWT token")
	ErrInvalidAuthorization = errors.New("invalid authorization header")
)

// GenerateJWTToken creates an HMAC-SHA256 signed token naming client in the
// "sub" claim. Issuer, duration and key are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-secure-storage", "cli", time.Hour, "secret")
func GenerateJWTToken(issuer, client string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || client == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   client,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Client: client}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and returns the token with Client set from the "sub" claim.
// Only HMAC signing methods are accepted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	client, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if client == "" {
		return models.Token{}, ErrEmptyTokenSubject
	}

	return models.Token{Token: token, SignedString: tokenString, Client: client}, nil
}

// ParseBearerToken extracts the token from a "Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorization
	}
	return parts[1], nil
}
