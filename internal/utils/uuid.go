package utils

import "github.com/google/uuid"

// NewID returns a time-ordered uuid v7 string, falling back to a random
// uuid v4 if the v7 generator fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
