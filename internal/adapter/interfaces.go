// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP clients of go-family-tree.
//
// [AIClient] talks to the external chat completion endpoint on behalf of the
// AI orchestration service. [ServerAdapter] is the console client's view of
// the go-family-tree API; it keeps the session cookie between calls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-family-tree/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AIClient performs one chat completion call.
type AIClient interface {
	// Complete sends messages with the client defaults overridden by cfg and
	// returns the first choice. Every failure wraps [ErrAIRequestFailed].
	// No retries are made.
	Complete(ctx context.Context, messages []models.ChatMessage, cfg models.AIRequestConfig) (models.AIResponse, error)
}

// ServerAdapter defines the console client's communication with the
// go-family-tree API.
type ServerAdapter interface {
	// SetToken stores the session token sent as the auth-token cookie.
	SetToken(token string)

	// Token returns the stored session token or an empty string.
	Token() string

	// Login authenticates with email and password and keeps the session
	// cookie returned by the server.
	Login(ctx context.Context, email, password string) (models.AuthUser, error)

	// Logout ends the session on the server and forgets the token.
	Logout(ctx context.Context) error

	// Me returns the identity the server resolves for the stored token.
	Me(ctx context.Context) (models.AuthUser, error)

	// ListProjects returns the projects visible to the logged-in user.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// ListFamilyMembers returns the persons of a project.
	ListFamilyMembers(ctx context.Context, projectID string) ([]models.FamilyMember, error)

	// GetResearchSuggestions asks the research assistant about a project.
	GetResearchSuggestions(ctx context.Context, projectID string) (models.ResearchSuggestionsResult, error)
}
