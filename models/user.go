package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownRole is returned when a string does not name one of the two
// supported roles.
var ErrUnknownRole = errors.New("unknown role")

// Role is the coarse authorization class of an account.
//
// Only [RoleClient] and [RoleAdmin] are valid. Values coming from storage,
// tokens or request bodies must go through [ParseRole] (or Scan) so that an
// unknown string never reaches an authorization decision. Every switch over
// Role must list both variants and treat the default branch as an error.
type Role string

const (
	// RoleClient owns projects and may only touch rows of projects it owns.
	RoleClient Role = "CLIENT"
	// RoleAdmin bypasses project ownership scoping.
	RoleAdmin Role = "ADMIN"
)

// ParseRole converts s into a Role. Matching is exact.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient:
		return RoleClient, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Scan implements sql.Scanner and rejects unknown role values.
func (r *Role) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrUnknownRole, src)
	}

	role, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Value implements driver.Valuer.
func (r Role) Value() (driver.Value, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
	}
	return string(r), nil
}

// User is an account record as stored in the users table.
type User struct {
	// ID is the text primary key (uuid v7 or a fixed seed id).
	ID string `json:"id"`

	// Email is unique and always stored lower-cased.
	Email string `json:"email"`

	// Name is the display name shown in dashboards.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthUser returns the identity view of u used in request contexts and
// API responses.
func (u User) AuthUser() AuthUser {
	return AuthUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// AuthUser is the resolved identity of the caller of a request.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// NormalizeEmail trims and lower-cases an email address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
