package adapter

import "errors"

// ErrAIRequestFailed is returned by [AIClient.Complete] for transport
// failures, non-2xx statuses and replies that are not a completion.
var ErrAIRequestFailed = errors.New("AI request failed")

// Errors mapped from go-family-tree API statuses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrNoSessionCookie is returned by Login when the server accepted the
// credentials but sent no auth-token cookie.
var ErrNoSessionCookie = errors.New("no session cookie in response")
