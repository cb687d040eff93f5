package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	guard             projectGuard

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		guard:             projectGuard{projects: projectRepository},
		logger:            logger,
	}
}

// ListProjects returns every project for an ADMIN and only the caller's own
// projects for a CLIENT, newest first.
func (p *projectService) ListProjects(ctx context.Context, caller models.AuthUser) ([]models.Project, error) {
	filter, err := projectScope(caller)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", caller.ID).Str("role", string(caller.Role)).Msg("project listing refused")
		return nil, err
	}

	return p.projectRepository.ListProjects(ctx, filter)
}

func (p *projectService) GetProject(ctx context.Context, caller models.AuthUser, projectID string) (models.Project, error) {
	return p.guard.load(ctx, caller, projectID)
}

// CreateProject stores a new ACTIVE project owned by caller.
func (p *projectService) CreateProject(ctx context.Context, caller models.AuthUser, req models.CreateProjectRequest) (models.Project, error) {
	log := logger.FromContext(ctx)

	if !caller.Role.IsValid() {
		return models.Project{}, fmt.Errorf("%w: %w", ErrAccessDenied, models.ErrUnknownRole)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		log.Error().Str("user_id", caller.ID).Msg("project title is blank")
		return models.Project{}, fmt.Errorf("%w: title is required", ErrInvalidDataProvided)
	}

	project, err := p.projectRepository.CreateProject(ctx, models.Project{
		ID:          utils.NewID(),
		Title:       title,
		Description: req.Description,
		Status:      models.ProjectStatusActive,
		ClientID:    caller.ID,
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	project.Client = &models.ClientSummary{ID: caller.ID, Name: caller.Name, Email: caller.Email}
	project.Counts = &models.ProjectCounts{}
	return project, nil
}

// UpdateProject applies a partial update. An update that sets nothing is
// ErrNothingToUpdate. Ownership never changes.
func (p *projectService) UpdateProject(ctx context.Context, caller models.AuthUser, projectID string, update models.ProjectUpdate) (models.Project, error) {
	current, err := p.guard.load(ctx, caller, projectID)
	if err != nil {
		return models.Project{}, err
	}

	if update.IsEmpty() {
		return models.Project{}, ErrNothingToUpdate
	}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return models.Project{}, fmt.Errorf("%w: title must not be blank", ErrInvalidDataProvided)
		}
		update.Title = &title
	}
	if update.Status != nil {
		if _, err = models.ParseProjectStatus(string(*update.Status)); err != nil {
			return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	updated, err := p.projectRepository.UpdateProject(ctx, projectID, update)
	if err != nil {
		return models.Project{}, err
	}

	updated.Client = current.Client
	updated.Counts = current.Counts
	return updated, nil
}

func (p *projectService) DeleteProject(ctx context.Context, caller models.AuthUser, projectID string) error {
	if _, err := p.guard.load(ctx, caller, projectID); err != nil {
		return err
	}

	if err := p.projectRepository.DeleteProject(ctx, projectID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("project_id", projectID).Str("user_id", caller.ID).Msg("project deleted")
	return nil
}
