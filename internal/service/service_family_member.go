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

type familyMemberService struct {
	memberRepository store.FamilyMemberRepository
	guard            projectGuard

	logger *logger.Logger
}

func NewFamilyMemberService(projectRepository store.ProjectRepository, memberRepository store.FamilyMemberRepository, logger *logger.Logger) FamilyMemberService {
	return &familyMemberService{
		memberRepository: memberRepository,
		guard:            projectGuard{projects: projectRepository},
		logger:           logger,
	}
}

// ListFamilyMembers returns the persons of a project ordered by birth date,
// undated persons last.
func (f *familyMemberService) ListFamilyMembers(ctx context.Context, caller models.AuthUser, projectID string) ([]models.FamilyMember, error) {
	if _, err := f.guard.load(ctx, caller, projectID); err != nil {
		return nil, err
	}

	return f.memberRepository.ListFamilyMembers(ctx, projectID)
}

func (f *familyMemberService) CreateFamilyMember(ctx context.Context, caller models.AuthUser, projectID string, req models.CreateFamilyMemberRequest) (models.FamilyMember, error) {
	if _, err := f.guard.load(ctx, caller, projectID); err != nil {
		return models.FamilyMember{}, err
	}

	member := req.ToMember(projectID, caller.ID)
	member.ID = utils.NewID()
	member.FirstName = strings.TrimSpace(member.FirstName)
	if err := validateMember(member); err != nil {
		logger.FromContext(ctx).Err(err).Str("project_id", projectID).Msg("family member rejected")
		return models.FamilyMember{}, err
	}

	created, err := f.memberRepository.CreateFamilyMember(ctx, member)
	if err != nil {
		return models.FamilyMember{}, fmt.Errorf("family member creation ended with error: %w", err)
	}
	return created, nil
}

// UpdateFamilyMember validates the merged record, not only the changed
// fields, so a new death date is checked against the stored birth date.
func (f *familyMemberService) UpdateFamilyMember(ctx context.Context, caller models.AuthUser, projectID, memberID string, update models.FamilyMemberUpdate) (models.FamilyMember, error) {
	if _, err := f.guard.load(ctx, caller, projectID); err != nil {
		return models.FamilyMember{}, err
	}
	if update.IsEmpty() {
		return models.FamilyMember{}, ErrNothingToUpdate
	}

	current, err := f.memberRepository.GetFamilyMember(ctx, projectID, memberID)
	if err != nil {
		return models.FamilyMember{}, err
	}

	if update.FirstName != nil {
		firstName := strings.TrimSpace(*update.FirstName)
		update.FirstName = &firstName
	}
	if err = validateMember(update.ApplyTo(current)); err != nil {
		logger.FromContext(ctx).Err(err).Str("member_id", memberID).Msg("family member update rejected")
		return models.FamilyMember{}, err
	}

	return f.memberRepository.UpdateFamilyMember(ctx, projectID, memberID, update)
}

func (f *familyMemberService) DeleteFamilyMember(ctx context.Context, caller models.AuthUser, projectID, memberID string) error {
	if _, err := f.guard.load(ctx, caller, projectID); err != nil {
		return err
	}

	return f.memberRepository.DeleteFamilyMember(ctx, projectID, memberID)
}

func validateMember(member models.FamilyMember) error {
	if member.FirstName == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidDataProvided)
	}
	if member.Gender != nil {
		if _, err := models.ParseGender(string(*member.Gender)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}
	if member.BirthDate != nil && member.DeathDate != nil && member.DeathDate.Before(member.BirthDate.Time) {
		return fmt.Errorf("%w: %s < %s", ErrInvalidDateRange, member.DeathDate, member.BirthDate)
	}
	return nil
}
