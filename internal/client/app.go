package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/models"
)

// UI is the part of the terminal interface the app drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.AuthUser, error)
	MainLoop(ctx context.Context, user models.AuthUser) (logout bool, err error)
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run alternates between the sign-in flow and the project browser until
// the user quits.
func (a *App) Run(ctx context.Context) error {
	for {
		user, err := a.ui.LoginFlow(ctx)
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if lerr := a.services.AuthService.Logout(ctx); lerr != nil {
			a.logger.Err(lerr).Str("func", "*App.Run").Msg("server logout failed")
		}
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
	}
}
