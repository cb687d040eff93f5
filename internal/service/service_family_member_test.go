package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/mock"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMemberSvc(t *testing.T, ctrl *gomock.Controller) (FamilyMemberService, *mock.MockProjectRepository, *mock.MockFamilyMemberRepository) {
	t.Helper()
	mockProjects := mock.NewMockProjectRepository(ctrl)
	mockMembers := mock.NewMockFamilyMemberRepository(ctrl)
	return NewFamilyMemberService(mockProjects, mockMembers, logger.Nop()), mockProjects, mockMembers
}

func datePointer(year int, month time.Month, day int) *models.Date {
	d := models.NewDate(year, month, day)
	return &d
}

func TestFamilyMemberService_CreateFamilyMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects, mockMembers := newTestMemberSvc(t, ctrl)
	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	mockMembers.EXPECT().CreateFamilyMember(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.FamilyMember) (models.FamilyMember, error) {
			assert.NotEmpty(t, m.ID)
			assert.Equal(t, testProject.ID, m.ProjectID)
			assert.Equal(t, testClient.ID, m.AddedByID)
			assert.Equal(t, "John", m.FirstName)
			return m, nil
		},
	)

	_, err := svc.CreateFamilyMember(context.Background(), testClient, testProject.ID, models.CreateFamilyMemberRequest{
		FirstName: " John ",
		BirthDate: datePointer(1850, time.March, 15),
		DeathDate: datePointer(1920, time.November, 22),
	})

	require.NoError(t, err)
}

func TestFamilyMemberService_CreateFamilyMember_Rejected(t *testing.T) {
	gender := models.Gender("ROBOT")

	tests := []struct {
		name    string
		req     models.CreateFamilyMemberRequest
		wantErr error
	}{
		{
			name:    "death before birth",
			req:     models.CreateFamilyMemberRequest{FirstName: "Mary", BirthDate: datePointer(1900, time.May, 1), DeathDate: datePointer(1899, time.May, 1)},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "blank first name",
			req:     models.CreateFamilyMemberRequest{FirstName: "  "},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "unknown gender",
			req:     models.CreateFamilyMemberRequest{FirstName: "Pat", Gender: &gender},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockProjects, _ := newTestMemberSvc(t, ctrl)
			mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)

			_, err := svc.CreateFamilyMember(context.Background(), testClient, testProject.ID, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFamilyMemberService_CreateFamilyMember_SameDayIsAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects, mockMembers := newTestMemberSvc(t, ctrl)
	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	mockMembers.EXPECT().CreateFamilyMember(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.FamilyMember) (models.FamilyMember, error) { return m, nil },
	)

	_, err := svc.CreateFamilyMember(context.Background(), testClient, testProject.ID, models.CreateFamilyMemberRequest{
		FirstName: "Infant",
		BirthDate: datePointer(1890, time.June, 2),
		DeathDate: datePointer(1890, time.June, 2),
	})

	require.NoError(t, err)
}

func TestFamilyMemberService_UpdateFamilyMember_MergedDatesChecked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects, mockMembers := newTestMemberSvc(t, ctrl)
	stored := models.FamilyMember{ID: "john-smith-1850", ProjectID: testProject.ID, FirstName: "John", BirthDate: datePointer(1850, time.March, 15)}

	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	mockMembers.EXPECT().GetFamilyMember(gomock.Any(), testProject.ID, stored.ID).Return(stored, nil)

	_, err := svc.UpdateFamilyMember(context.Background(), testClient, testProject.ID, stored.ID, models.FamilyMemberUpdate{
		DeathDate: datePointer(1849, time.January, 1),
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestFamilyMemberService_UpdateFamilyMember_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects, _ := newTestMemberSvc(t, ctrl)
	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)

	_, err := svc.UpdateFamilyMember(context.Background(), testClient, testProject.ID, "m1", models.FamilyMemberUpdate{})

	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestFamilyMemberService_ListFamilyMembers_ForeignProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects, _ := newTestMemberSvc(t, ctrl)
	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)

	_, err := svc.ListFamilyMembers(context.Background(), testOther, testProject.ID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestFamilyMemberService_DeleteFamilyMember_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects, mockMembers := newTestMemberSvc(t, ctrl)
	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	mockMembers.EXPECT().DeleteFamilyMember(gomock.Any(), testProject.ID, "ghost").Return(store.ErrFamilyMemberNotFound)

	err := svc.DeleteFamilyMember(context.Background(), testAdmin, testProject.ID, "ghost")

	assert.ErrorIs(t, err, store.ErrFamilyMemberNotFound)
}
