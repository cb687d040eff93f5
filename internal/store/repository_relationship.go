package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
)

type relationshipRepository struct {
	*DB
	logger *logger.Logger
}

func NewRelationshipRepository(db *DB, logger *logger.Logger) RelationshipRepository {
	logger.Debug().Msg("creating relationship repository")
	return &relationshipRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *relationshipRepository) ListRelationships(ctx context.Context, projectID string) ([]models.Relationship, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listRelationships, projectID)
	if err != nil {
		log.Err(err).Str("func", "*relationshipRepository.ListRelationships").Str("project_id", projectID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	relationships := make([]models.Relationship, 0)
	for rows.Next() {
		var relationship models.Relationship
		if scanErr := scanRelationship(rows, &relationship); scanErr != nil {
			log.Err(scanErr).Str("func", "*relationshipRepository.ListRelationships").Msg("failed to scan relationship row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		relationships = append(relationships, relationship)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return relationships, nil
}

// CreateRelationship inserts relationship. The composite foreign keys turn a
// person of another project into [ErrInvalidReference]; the same typed link
// recorded twice is [ErrRelationshipAlreadyExists].
func (r *relationshipRepository) CreateRelationship(ctx context.Context, relationship models.Relationship) (models.Relationship, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createRelationship,
		relationship.ID,
		relationship.ProjectID,
		relationship.Person1ID,
		relationship.Person2ID,
		string(relationship.RelationshipType),
		relationship.Confidence,
		relationship.Reasoning,
		relationship.AISuggested,
	)

	var created models.Relationship
	if err := scanRelationship(row, &created); err != nil {
		log.Err(err).
			Str("func", "*relationshipRepository.CreateRelationship").
			Str("project_id", relationship.ProjectID).
			Str("person1_id", relationship.Person1ID).
			Str("person2_id", relationship.Person2ID).
			Msg("failed to insert relationship")
		return models.Relationship{}, r.DB.writeError(err, ErrRelationshipAlreadyExists)
	}

	return created, nil
}

func (r *relationshipRepository) DeleteRelationship(ctx context.Context, projectID, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteRelationship, projectID, id)
	if err != nil {
		log.Err(err).Str("func", "*relationshipRepository.DeleteRelationship").Str("relationship_id", id).Msg("failed to delete relationship")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrRelationshipNotFound)
}

func scanRelationship(row rowScanner, relationship *models.Relationship) error {
	return row.Scan(
		&relationship.ID,
		&relationship.ProjectID,
		&relationship.Person1ID,
		&relationship.Person2ID,
		&relationship.RelationshipType,
		&relationship.Confidence,
		&relationship.Reasoning,
		&relationship.AISuggested,
		&relationship.CreatedAt,
	)
}
