package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/models"
)

// authorizeProject is the owner-or-admin check.
func authorizeProject(caller models.AuthUser, project models.Project) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleClient:
		if project.ClientID != caller.ID {
			return ErrAccessDenied
		}
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrAccessDenied, models.ErrUnknownRole)
	}
}

// projectScope returns the listing filter of caller.
func projectScope(caller models.AuthUser) (models.ProjectFilter, error) {
	switch caller.Role {
	case models.RoleAdmin:
		return models.ProjectFilter{}, nil
	case models.RoleClient:
		return models.ProjectFilter{ClientID: caller.ID}, nil
	default:
		return models.ProjectFilter{}, fmt.Errorf("%w: %w", ErrAccessDenied, models.ErrUnknownRole)
	}
}

// projectGuard loads a project and applies the owner-or-admin check, in
// that order, so a missing project is reported as not found.
type projectGuard struct {
	projects store.ProjectRepository
}

func (g projectGuard) load(ctx context.Context, caller models.AuthUser, projectID string) (models.Project, error) {
	if projectID == "" {
		return models.Project{}, store.ErrProjectNotFound
	}

	project, err := g.projects.GetProject(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}
	if err = authorizeProject(caller, project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}
