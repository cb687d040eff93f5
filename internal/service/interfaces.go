package service

import (
	"context"

	"github.com/MKhiriev/go-family-tree/models"
)

// AuthService covers passwords, session tokens and identity resolution.
type AuthService interface {
	// Register creates a CLIENT account. The email is stored lower-cased.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Authenticate returns the user owning email when password matches.
	// Unknown emails and wrong passwords both yield ErrWrongCredentials.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	CreateToken(ctx context.Context, user models.AuthUser) (models.Token, error)

	// ParseToken verifies a session token without touching storage. Every
	// failure is ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, token string) (models.Claims, error)

	// ResolveIdentity verifies token and re-reads its user, so role and
	// name changes since issuance are visible. A deleted user is
	// ErrTokenIsExpiredOrInvalid.
	ResolveIdentity(ctx context.Context, token string) (models.AuthUser, error)
}

// ProjectService manages projects. Every method applies the owner-or-admin
// rule for caller.
type ProjectService interface {
	ListProjects(ctx context.Context, caller models.AuthUser) ([]models.Project, error)
	GetProject(ctx context.Context, caller models.AuthUser, projectID string) (models.Project, error)
	CreateProject(ctx context.Context, caller models.AuthUser, req models.CreateProjectRequest) (models.Project, error)
	UpdateProject(ctx context.Context, caller models.AuthUser, projectID string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, caller models.AuthUser, projectID string) error
}

type FamilyMemberService interface {
	ListFamilyMembers(ctx context.Context, caller models.AuthUser, projectID string) ([]models.FamilyMember, error)
	CreateFamilyMember(ctx context.Context, caller models.AuthUser, projectID string, req models.CreateFamilyMemberRequest) (models.FamilyMember, error)
	UpdateFamilyMember(ctx context.Context, caller models.AuthUser, projectID, memberID string, update models.FamilyMemberUpdate) (models.FamilyMember, error)
	DeleteFamilyMember(ctx context.Context, caller models.AuthUser, projectID, memberID string) error
}

type DocumentService interface {
	ListDocuments(ctx context.Context, caller models.AuthUser, projectID string) ([]models.Document, error)
	GetDocument(ctx context.Context, caller models.AuthUser, projectID, documentID string) (models.Document, error)
	CreateDocument(ctx context.Context, caller models.AuthUser, projectID string, req models.CreateDocumentRequest) (models.Document, error)
	DeleteDocument(ctx context.Context, caller models.AuthUser, projectID, documentID string) error
}

type RelationshipService interface {
	ListRelationships(ctx context.Context, caller models.AuthUser, projectID string) ([]models.Relationship, error)
	CreateRelationship(ctx context.Context, caller models.AuthUser, projectID string, req models.CreateRelationshipRequest) (models.Relationship, error)
	DeleteRelationship(ctx context.Context, caller models.AuthUser, projectID, relationshipID string) error
}

// AIService runs the AI operations. Each one builds a prompt, calls the
// model once, validates the reply and stores an audit record before the
// result is returned. A reply that fails validation is ErrAIResponseParse
// and leaves no record.
type AIService interface {
	AnalyzeDocument(ctx context.Context, caller models.AuthUser, req models.AnalyzeDocumentRequest) (models.DocumentAnalysisResult, error)
	DetectRelationships(ctx context.Context, caller models.AuthUser, projectID string) (models.RelationshipDetectionResult, error)
	GetResearchSuggestions(ctx context.Context, caller models.AuthUser, projectID string) (models.ResearchSuggestionsResult, error)
	StandardizeNames(ctx context.Context, caller models.AuthUser, req models.StandardizeNamesRequest) (models.NameStandardizationResult, error)

	// ListAnalyses returns the audit records of a project, newest first.
	ListAnalyses(ctx context.Context, caller models.AuthUser, projectID string) ([]models.AIAnalysis, error)
}

// AdminService backs the admin dashboard. Callers must be ADMIN.
type AdminService interface {
	GetStats(ctx context.Context, caller models.AuthUser) (models.AdminStats, error)
	ListClients(ctx context.Context, caller models.AuthUser) ([]models.ClientOverview, error)
}

// SeedService inserts the demo accounts and projects.
type SeedService interface {
	SeedDemoData(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// CheckHealth reports whether the database answers.
	CheckHealth(ctx context.Context) error
}
