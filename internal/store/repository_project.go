package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository] over the "projects" table.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

// ListProjects returns the projects matched by filter joined with their
// owning client and child counts, newest first.
func (p *projectRepository) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*projectRepository.ListProjects").
			Str("client_id", filter.ClientID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		project, scanErr := scanProjectWithSummary(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*projectRepository.ListProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error iterating project rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// GetProject returns one project with its client summary and counts.
// Returns [ErrProjectNotFound] when no row matches.
func (p *projectRepository) GetProject(ctx context.Context, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProjectQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.GetProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	project, err := scanProjectWithSummary(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*projectRepository.GetProject").Str("project_id", id).Msg("failed to scan project")
		}
		return models.Project{}, rowError(err, ErrProjectNotFound)
	}

	return project, nil
}

// CreateProject inserts project. An unknown client id yields
// [ErrInvalidReference].
func (p *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createProject,
		project.ID, project.Title, project.Description, string(project.Status), project.ClientID,
	)

	var created models.Project
	if err := scanProject(row, &created); err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Str("client_id", project.ClientID).Msg("failed to insert project")
		return models.Project{}, p.DB.writeError(err, nil)
	}

	return created, nil
}

// UpdateProject applies the non-nil fields of update and returns the stored
// row without client summary and counts.
func (p *projectRepository) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProjectQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Project
	if err = scanProject(p.DB.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Str("project_id", id).Msg("failed to update project")
		return models.Project{}, p.DB.writeError(err, nil)
	}

	return updated, nil
}

// DeleteProject removes the project and, through ON DELETE CASCADE, every
// row that belongs to it.
func (p *projectRepository) DeleteProject(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteProject, id)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Str("project_id", id).Msg("failed to delete project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrProjectNotFound)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner, project *models.Project) error {
	return row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Status,
		&project.ClientID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
}

func scanProjectWithSummary(row rowScanner) (models.Project, error) {
	var (
		project models.Project
		client  models.ClientSummary
		counts  models.ProjectCounts
	)

	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Status,
		&project.ClientID,
		&project.CreatedAt,
		&project.UpdatedAt,
		&client.ID,
		&client.Name,
		&client.Email,
		&counts.Documents,
		&counts.FamilyMembers,
		&counts.Relationships,
	)
	if err != nil {
		return models.Project{}, err
	}

	project.Client = &client
	project.Counts = &counts
	return project, nil
}

// expectAffected turns a DELETE that matched nothing into notFound.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
