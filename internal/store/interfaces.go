package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-family-tree/models"
)

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository stores accounts. Emails are expected lower-cased.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// ProjectRepository stores projects. Listings and single lookups carry the
// owning client summary and child row counts.
type ProjectRepository interface {
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// FamilyMemberRepository stores persons. Every method except Create is
// addressed by (projectID, id) so a row is never reachable through a
// project it does not belong to.
type FamilyMemberRepository interface {
	ListFamilyMembers(ctx context.Context, projectID string) ([]models.FamilyMember, error)
	GetFamilyMember(ctx context.Context, projectID, id string) (models.FamilyMember, error)
	CreateFamilyMember(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error)
	UpdateFamilyMember(ctx context.Context, projectID, id string, update models.FamilyMemberUpdate) (models.FamilyMember, error)
	DeleteFamilyMember(ctx context.Context, projectID, id string) error
}

type DocumentRepository interface {
	ListDocuments(ctx context.Context, projectID string) ([]models.Document, error)
	GetDocument(ctx context.Context, projectID, id string) (models.Document, error)
	CreateDocument(ctx context.Context, document models.Document) (models.Document, error)
	DeleteDocument(ctx context.Context, projectID, id string) error
}

type RelationshipRepository interface {
	ListRelationships(ctx context.Context, projectID string) ([]models.Relationship, error)
	CreateRelationship(ctx context.Context, relationship models.Relationship) (models.Relationship, error)
	DeleteRelationship(ctx context.Context, projectID, id string) error
}

// AnalysisRepository stores the AI audit trail. Rows are append-only.
type AnalysisRepository interface {
	CreateAnalysis(ctx context.Context, analysis models.AIAnalysis) (models.AIAnalysis, error)
	ListAnalyses(ctx context.Context, projectID string) ([]models.AIAnalysis, error)
}

type StatsRepository interface {
	GetAdminStats(ctx context.Context) (models.AdminStats, error)
	ListClientOverviews(ctx context.Context) ([]models.ClientOverview, error)
}

// SeedRepository inserts demo rows. Running it twice leaves the database
// unchanged.
type SeedRepository interface {
	SeedDemoData(ctx context.Context, data models.DemoData) error
}
