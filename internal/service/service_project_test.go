package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/mock"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testAdmin  = models.AuthUser{ID: "seed-admin", Email: "admin@demo.com", Name: "Admin User", Role: models.RoleAdmin}
	testClient = models.AuthUser{ID: "seed-client", Email: "client@demo.com", Name: "Demo Client", Role: models.RoleClient}
	testOther  = models.AuthUser{ID: "other-client", Email: "other@demo.com", Name: "Other", Role: models.RoleClient}

	testProject = models.Project{
		ID:       "smith-family-project",
		Title:    "Smith Family History",
		Status:   models.ProjectStatusActive,
		ClientID: "seed-client",
		Client:   &models.ClientSummary{ID: "seed-client", Name: "Demo Client", Email: "client@demo.com"},
		Counts:   &models.ProjectCounts{FamilyMembers: 3},
	}
)

func newTestProjectSvc(t *testing.T, ctrl *gomock.Controller) (ProjectService, *mock.MockProjectRepository) {
	t.Helper()
	mockProjects := mock.NewMockProjectRepository(ctrl)
	return NewProjectService(mockProjects, logger.Nop()), mockProjects
}

// ── authorizeProject ─────────────────────────────────────────────────────────

func TestAuthorizeProject(t *testing.T) {
	tests := []struct {
		name    string
		caller  models.AuthUser
		wantErr error
	}{
		{name: "admin", caller: testAdmin},
		{name: "owner", caller: testClient},
		{name: "other client", caller: testOther, wantErr: ErrAccessDenied},
		{name: "unknown role", caller: models.AuthUser{ID: "seed-client", Role: "GUEST"}, wantErr: models.ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizeProject(tt.caller, testProject)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

// ── ListProjects ─────────────────────────────────────────────────────────────

func TestProjectService_ListProjects_ClientIsScoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects := newTestProjectSvc(t, ctrl)
	mockProjects.EXPECT().
		ListProjects(gomock.Any(), models.ProjectFilter{ClientID: "seed-client"}).
		Return([]models.Project{testProject}, nil)

	projects, err := svc.ListProjects(context.Background(), testClient)

	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestProjectService_ListProjects_AdminSeesAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects := newTestProjectSvc(t, ctrl)
	mockProjects.EXPECT().ListProjects(gomock.Any(), models.ProjectFilter{}).Return(nil, nil)

	_, err := svc.ListProjects(context.Background(), testAdmin)

	require.NoError(t, err)
}

func TestProjectService_ListProjects_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProjectSvc(t, ctrl)

	_, err := svc.ListProjects(context.Background(), models.AuthUser{ID: "x", Role: "GUEST"})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

// ── GetProject ───────────────────────────────────────────────────────────────

func TestProjectService_GetProject(t *testing.T) {
	tests := []struct {
		name    string
		caller  models.AuthUser
		found   models.Project
		findErr error
		wantErr error
	}{
		{name: "owner", caller: testClient, found: testProject},
		{name: "admin", caller: testAdmin, found: testProject},
		{name: "foreign project", caller: testOther, found: testProject, wantErr: ErrAccessDenied},
		{name: "missing", caller: testAdmin, findErr: store.ErrProjectNotFound, wantErr: store.ErrProjectNotFound},
		{name: "missing for other client", caller: testOther, findErr: store.ErrProjectNotFound, wantErr: store.ErrProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockProjects := newTestProjectSvc(t, ctrl)
			mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(tt.found, tt.findErr)

			project, err := svc.GetProject(context.Background(), tt.caller, testProject.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testProject.Title, project.Title)
		})
	}
}

func TestProjectService_GetProject_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProjectSvc(t, ctrl)

	_, err := svc.GetProject(context.Background(), testAdmin, "")

	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}

// ── CreateProject ────────────────────────────────────────────────────────────

func TestProjectService_CreateProject_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects := newTestProjectSvc(t, ctrl)
	mockProjects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Project) (models.Project, error) {
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, "Jones Family", p.Title)
			assert.Equal(t, models.ProjectStatusActive, p.Status)
			assert.Equal(t, testClient.ID, p.ClientID)
			return p, nil
		},
	)

	project, err := svc.CreateProject(context.Background(), testClient, models.CreateProjectRequest{Title: "  Jones Family "})

	require.NoError(t, err)
	require.NotNil(t, project.Client)
	assert.Equal(t, testClient.Email, project.Client.Email)
	require.NotNil(t, project.Counts)
	assert.Zero(t, project.Counts.FamilyMembers)
}

func TestProjectService_CreateProject_BlankTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProjectSvc(t, ctrl)

	_, err := svc.CreateProject(context.Background(), testClient, models.CreateProjectRequest{Title: "   "})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── UpdateProject ────────────────────────────────────────────────────────────

func TestProjectService_UpdateProject_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects := newTestProjectSvc(t, ctrl)
	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)

	_, err := svc.UpdateProject(context.Background(), testClient, testProject.ID, models.ProjectUpdate{})

	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestProjectService_UpdateProject_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects := newTestProjectSvc(t, ctrl)
	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	status := models.ProjectStatus("DONE")

	_, err := svc.UpdateProject(context.Background(), testClient, testProject.ID, models.ProjectUpdate{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProjectService_UpdateProject_KeepsClientAndCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects := newTestProjectSvc(t, ctrl)
	status := models.ProjectStatusCompleted
	update := models.ProjectUpdate{Status: &status}

	updated := testProject
	updated.Status = status
	updated.Client = nil
	updated.Counts = nil

	gomock.InOrder(
		mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil),
		mockProjects.EXPECT().UpdateProject(gomock.Any(), testProject.ID, update).Return(updated, nil),
	)

	project, err := svc.UpdateProject(context.Background(), testAdmin, testProject.ID, update)

	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, project.Status)
	assert.Equal(t, testProject.Client, project.Client)
	assert.Equal(t, testProject.Counts, project.Counts)
}

// ── DeleteProject ────────────────────────────────────────────────────────────

func TestProjectService_DeleteProject_ForeignClientDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects := newTestProjectSvc(t, ctrl)
	mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)

	err := svc.DeleteProject(context.Background(), testOther, testProject.ID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestProjectService_DeleteProject_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProjects := newTestProjectSvc(t, ctrl)
	gomock.InOrder(
		mockProjects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil),
		mockProjects.EXPECT().DeleteProject(gomock.Any(), testProject.ID).Return(nil),
	)

	require.NoError(t, svc.DeleteProject(context.Background(), testClient, testProject.ID))
}
