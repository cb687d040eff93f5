package service

import (
	"context"

	"github.com/MKhiriev/go-family-tree/models"
)

// ClientAuthService defines the console client's session handling.
type ClientAuthService interface {
	// Login authenticates against the server and keeps the session cookie
	// in the adapter. Returns the identity the server reported.
	Login(ctx context.Context, email, password string) (models.AuthUser, error)

	// Logout ends the server session. The local session is dropped even
	// when the server call fails.
	Logout(ctx context.Context) error

	// CurrentUser re-reads the identity of the stored session.
	// Returns ErrNotLoggedIn when there is no session.
	CurrentUser(ctx context.Context) (models.AuthUser, error)
}

// ClientProjectService defines the console client's read access to projects.
type ClientProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListFamilyMembers(ctx context.Context, projectID string) ([]models.FamilyMember, error)

	// GetResearchSuggestions runs the research assistant on the server.
	// Every call stores a new audit record there.
	GetResearchSuggestions(ctx context.Context, projectID string) ([]models.ResearchSuggestion, error)
}
