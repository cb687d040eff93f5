// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor used for new hashes.
const PasswordHashCost = 12

// HashPassword returns a salted bcrypt hash of password.
// Passwords longer than 72 bytes are rejected by bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash.
// Malformed hashes never match.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyPasswordHash returns a cost-[PasswordHashCost] hash of no account's
// password. Comparing against it costs as much as a real check, so a login
// with an unknown email takes as long as one with a wrong password.
var DummyPasswordHash = sync.OnceValue(func() string {
	hash, err := HashPassword("no-such-account")
	if err != nil {
		return ""
	}
	return hash
})
