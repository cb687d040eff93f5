package service

import (
	"context"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/models"
)

type clientProjectService struct {
	adapter adapter.ServerAdapter
}

func NewClientProjectService(serverAdapter adapter.ServerAdapter) ClientProjectService {
	return &clientProjectService{adapter: serverAdapter}
}

func (p *clientProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	if p.adapter.Token() == "" {
		return nil, ErrNotLoggedIn
	}

	projects, err := p.adapter.ListProjects(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return projects, nil
}

func (p *clientProjectService) ListFamilyMembers(ctx context.Context, projectID string) ([]models.FamilyMember, error) {
	if p.adapter.Token() == "" {
		return nil, ErrNotLoggedIn
	}

	members, err := p.adapter.ListFamilyMembers(ctx, projectID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return members, nil
}

func (p *clientProjectService) GetResearchSuggestions(ctx context.Context, projectID string) ([]models.ResearchSuggestion, error) {
	if p.adapter.Token() == "" {
		return nil, ErrNotLoggedIn
	}

	result, err := p.adapter.GetResearchSuggestions(ctx, projectID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return result.Suggestions, nil
}
