package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the menu and login screens until a session is opened.
func (t *TUI) LoginFlow(ctx context.Context) (models.AuthUser, error) {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.AuthUser{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.AuthUser{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.AuthUser{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.user.ID).Msg("console session opened")
	return result.user, nil
}

// MainLoop shows the project browser. logout reports that the user asked
// to sign out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, user models.AuthUser) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services.ProjectService, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
