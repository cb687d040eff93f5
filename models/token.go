package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// The registered "sub" claim duplicates UserID so generic JWT tooling can
// identify the subject.
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// Token is a freshly issued session token.
type Token struct {
	// SignedString is the compact JWS form carried in the auth-token cookie.
	SignedString string `json:"-"`

	// Claims holds the payload that was signed.
	Claims Claims `json:"-"`

	// ExpiresAt mirrors the "exp" claim and drives cookie Max-Age.
	ExpiresAt time.Time `json:"expiresAt"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
