package service

import (
	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/store"
)

type Services struct {
	AuthService         AuthService
	ProjectService      ProjectService
	FamilyMemberService FamilyMemberService
	DocumentService     DocumentService
	RelationshipService RelationshipService
	AIService           AIService
	AdminService        AdminService
	SeedService         SeedService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, aiClient adapter.AIClient, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:         authService,
		ProjectService:      NewProjectService(storages.ProjectRepository, logger),
		FamilyMemberService: NewFamilyMemberService(storages.ProjectRepository, storages.FamilyMemberRepository, logger),
		DocumentService:     NewDocumentService(storages.ProjectRepository, storages.DocumentRepository, logger),
		RelationshipService: NewRelationshipService(storages.ProjectRepository, storages.FamilyMemberRepository, storages.RelationshipRepository, logger),
		AIService:           NewAIService(aiClient, storages, logger),
		AdminService:        NewAdminService(storages.StatsRepository, logger),
		SeedService:         NewSeedService(storages.SeedRepository, logger),
		AppInfoService:      appInfoService,
	}, nil
}
