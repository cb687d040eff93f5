package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
)

type familyMemberRepository struct {
	*DB
	logger *logger.Logger
}

func NewFamilyMemberRepository(db *DB, logger *logger.Logger) FamilyMemberRepository {
	logger.Debug().Msg("creating family member repository")
	return &familyMemberRepository{
		DB:     db,
		logger: logger,
	}
}

// ListFamilyMembers returns the persons of a project, oldest birth date first.
func (f *familyMemberRepository) ListFamilyMembers(ctx context.Context, projectID string) ([]models.FamilyMember, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, listFamilyMembers, projectID)
	if err != nil {
		log.Err(err).Str("func", "*familyMemberRepository.ListFamilyMembers").Str("project_id", projectID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.FamilyMember, 0)
	for rows.Next() {
		var member models.FamilyMember
		if scanErr := scanFamilyMember(rows, &member); scanErr != nil {
			log.Err(scanErr).Str("func", "*familyMemberRepository.ListFamilyMembers").Msg("failed to scan family member row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*familyMemberRepository.ListFamilyMembers").Msg("error iterating family member rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}

func (f *familyMemberRepository) GetFamilyMember(ctx context.Context, projectID, id string) (models.FamilyMember, error) {
	log := logger.FromContext(ctx)

	var member models.FamilyMember
	if err := scanFamilyMember(f.DB.QueryRowContext(ctx, getFamilyMember, projectID, id), &member); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*familyMemberRepository.GetFamilyMember").Str("member_id", id).Msg("failed to scan family member")
		}
		return models.FamilyMember{}, rowError(err, ErrFamilyMemberNotFound)
	}

	return member, nil
}

// CreateFamilyMember inserts member. A death date before the birth date is
// rejected by the schema with [ErrInvalidData].
func (f *familyMemberRepository) CreateFamilyMember(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error) {
	log := logger.FromContext(ctx)

	row := f.DB.QueryRowContext(ctx, createFamilyMember,
		member.ID,
		member.ProjectID,
		member.FirstName,
		member.LastName,
		member.MaidenName,
		member.BirthDate,
		member.DeathDate,
		member.BirthPlace,
		member.DeathPlace,
		member.Occupation,
		member.Gender,
		member.AddedByID,
	)

	var created models.FamilyMember
	if err := scanFamilyMember(row, &created); err != nil {
		log.Err(err).Str("func", "*familyMemberRepository.CreateFamilyMember").Str("project_id", member.ProjectID).Msg("failed to insert family member")
		return models.FamilyMember{}, f.DB.writeError(err, nil)
	}

	return created, nil
}

func (f *familyMemberRepository) UpdateFamilyMember(ctx context.Context, projectID, id string, update models.FamilyMemberUpdate) (models.FamilyMember, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFamilyMemberQuery(projectID, id, update)
	if err != nil {
		log.Err(err).Str("func", "*familyMemberRepository.UpdateFamilyMember").Msg("failed to build query")
		return models.FamilyMember{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.FamilyMember
	if err = scanFamilyMember(f.DB.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FamilyMember{}, ErrFamilyMemberNotFound
		}
		log.Err(err).Str("func", "*familyMemberRepository.UpdateFamilyMember").Str("member_id", id).Msg("failed to update family member")
		return models.FamilyMember{}, f.DB.writeError(err, nil)
	}

	return updated, nil
}

// DeleteFamilyMember removes the person and the relationships that reference it.
func (f *familyMemberRepository) DeleteFamilyMember(ctx context.Context, projectID, id string) error {
	log := logger.FromContext(ctx)

	result, err := f.DB.ExecContext(ctx, deleteFamilyMember, projectID, id)
	if err != nil {
		log.Err(err).Str("func", "*familyMemberRepository.DeleteFamilyMember").Str("member_id", id).Msg("failed to delete family member")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrFamilyMemberNotFound)
}

func scanFamilyMember(row rowScanner, member *models.FamilyMember) error {
	return row.Scan(
		&member.ID,
		&member.ProjectID,
		&member.FirstName,
		&member.LastName,
		&member.MaidenName,
		&member.BirthDate,
		&member.DeathDate,
		&member.BirthPlace,
		&member.DeathPlace,
		&member.Occupation,
		&member.Gender,
		&member.AddedByID,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
}
