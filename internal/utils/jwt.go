package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-family-tree/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned when a token cannot be generated
	// because one of the inputs is empty or out of range.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")

	// ErrInvalidToken is returned for every token that fails verification:
	// malformed, wrongly signed, issued by someone else, expired, or
	// carrying claims that do not describe a known identity.
	ErrInvalidToken = errors.New("invalid token")
)

// timeNow is the clock used for issuing and verifying tokens.
var timeNow = time.Now

// GenerateJWTToken creates a signed HMAC-SHA256 session token for user.
//
// The token carries the registered claims iss, sub (the user id), iat and
// exp (iat + tokenDuration) along with the userId, email and role claims.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-family-tree", user, 7*24*time.Hour, "secret")
func GenerateJWTToken(issuer string, user models.AuthUser, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || user.ID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}
	if !user.Role.IsValid() {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidTokenParams, models.ErrUnknownRole)
	}

	now := timeNow()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Claims:       claims,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Verification checks the HS256 signature against signKey, the issuer, the
// presence and value of exp, and that the identity claims are complete and
// name a known role. Every failure is reported as [ErrInvalidToken].
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Claims, error) {
	if tokenString == "" || signKey == "" {
		return models.Claims{}, ErrInvalidToken
	}

	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.UserID == "" || claims.Subject != claims.UserID {
		return models.Claims{}, fmt.Errorf("%w: subject does not match userId", ErrInvalidToken)
	}
	if !claims.Role.IsValid() {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, models.ErrUnknownRole)
	}

	return *claims, nil
}
