package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNothingToUpdate     = errors.New("no fields to update")

	// ErrWrongCredentials covers both an unknown email and a wrong password.
	ErrWrongCredentials = errors.New("invalid email or password")

	ErrTokenSignKeyIsNotSpecified = errors.New("token sign key is not specified")
	ErrTokenCreationFailed        = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid    = errors.New("token is expired or invalid")
	ErrUnauthenticated            = errors.New("authentication required")

	ErrAccessDenied = errors.New("access denied")

	ErrInvalidDateRange      = errors.New("death date precedes birth date")
	ErrCrossProjectReference = errors.New("referenced person does not belong to the project")

	ErrAIResponseParse = errors.New("failed to parse AI response")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Console client errors.
var (
	ErrLoginOnServer = errors.New("login on server failed")
	ErrNotLoggedIn   = errors.New("not logged in")
)
