// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, HTTP client initialization, JWT token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-family-tree/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ClaimsCtxKey stores the verified token claims placed by the access gate.
	ClaimsCtxKey = contextKey("claims")

	// AuthUserCtxKey stores the identity re-resolved against the store.
	AuthUserCtxKey = contextKey("authUser")
)

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified token claims from ctx.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}

// WithAuthUser returns a copy of ctx carrying user.
func WithAuthUser(ctx context.Context, user models.AuthUser) context.Context {
	return context.WithValue(ctx, AuthUserCtxKey, user)
}

// GetAuthUserFromContext retrieves the resolved caller identity from ctx.
//
// Example usage:
//
//	user, ok := utils.GetAuthUserFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetAuthUserFromContext(ctx context.Context) (models.AuthUser, bool) {
	user, ok := ctx.Value(AuthUserCtxKey).(models.AuthUser)
	return user, ok
}
