package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
)

type relationshipService struct {
	memberRepository       store.FamilyMemberRepository
	relationshipRepository store.RelationshipRepository
	guard                  projectGuard

	logger *logger.Logger
}

func NewRelationshipService(
	projectRepository store.ProjectRepository,
	memberRepository store.FamilyMemberRepository,
	relationshipRepository store.RelationshipRepository,
	logger *logger.Logger,
) RelationshipService {
	return &relationshipService{
		memberRepository:       memberRepository,
		relationshipRepository: relationshipRepository,
		guard:                  projectGuard{projects: projectRepository},
		logger:                 logger,
	}
}

func (r *relationshipService) ListRelationships(ctx context.Context, caller models.AuthUser, projectID string) ([]models.Relationship, error) {
	if _, err := r.guard.load(ctx, caller, projectID); err != nil {
		return nil, err
	}

	return r.relationshipRepository.ListRelationships(ctx, projectID)
}

// CreateRelationship links two different persons of the same project.
// A person that is missing from the project is ErrCrossProjectReference.
func (r *relationshipService) CreateRelationship(ctx context.Context, caller models.AuthUser, projectID string, req models.CreateRelationshipRequest) (models.Relationship, error) {
	log := logger.FromContext(ctx)

	if _, err := r.guard.load(ctx, caller, projectID); err != nil {
		return models.Relationship{}, err
	}

	if req.Person1ID == "" || req.Person2ID == "" || req.Person1ID == req.Person2ID {
		return models.Relationship{}, fmt.Errorf("%w: two different persons are required", ErrInvalidDataProvided)
	}
	relType, err := models.ParseRelationshipType(string(req.RelationshipType))
	if err != nil {
		return models.Relationship{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if req.Confidence != nil && (*req.Confidence < 0 || *req.Confidence > 1) {
		return models.Relationship{}, fmt.Errorf("%w: confidence must be within [0,1]", ErrInvalidDataProvided)
	}

	for _, personID := range []string{req.Person1ID, req.Person2ID} {
		if _, err = r.memberRepository.GetFamilyMember(ctx, projectID, personID); err != nil {
			if errors.Is(err, store.ErrFamilyMemberNotFound) {
				log.Error().Str("project_id", projectID).Str("person_id", personID).Msg("relationship references a person outside the project")
				return models.Relationship{}, fmt.Errorf("%w: %s", ErrCrossProjectReference, personID)
			}
			return models.Relationship{}, err
		}
	}

	created, err := r.relationshipRepository.CreateRelationship(ctx, models.Relationship{
		ID:               utils.NewID(),
		ProjectID:        projectID,
		Person1ID:        req.Person1ID,
		Person2ID:        req.Person2ID,
		RelationshipType: relType,
		Confidence:       req.Confidence,
		Reasoning:        req.Reasoning,
		AISuggested:      req.AISuggested,
	})
	if err != nil {
		return models.Relationship{}, fmt.Errorf("relationship creation ended with error: %w", err)
	}
	return created, nil
}

func (r *relationshipService) DeleteRelationship(ctx context.Context, caller models.AuthUser, projectID, relationshipID string) error {
	if _, err := r.guard.load(ctx, caller, projectID); err != nil {
		return err
	}

	return r.relationshipRepository.DeleteRelationship(ctx, projectID, relationshipID)
}
