package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/models"
)

type fakeUI struct {
	loginErr error
	logouts  []bool
	loopErr  error

	logins int
	loops  int
}

func (f *fakeUI) LoginFlow(context.Context) (models.AuthUser, error) {
	f.logins++
	return models.AuthUser{ID: "seed-client"}, f.loginErr
}

func (f *fakeUI) MainLoop(context.Context, models.AuthUser) (bool, error) {
	logout := f.logouts[f.loops]
	f.loops++
	return logout, f.loopErr
}

type fakeAuth struct {
	service.ClientAuthService
	logouts int
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return nil
}

func newTestApp(t *testing.T, ui UI, auth *fakeAuth) *App {
	t.Helper()
	app, err := NewApp(&service.ClientServices{AuthService: auth}, ui, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestApp_Run_LogoutThenQuit(t *testing.T) {
	ui := &fakeUI{logouts: []bool{true, false}}
	auth := &fakeAuth{}

	err := newTestApp(t, ui, auth).Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, ui.logins)
	assert.Equal(t, 2, auth.logouts)
}

func TestApp_Run_QuitAtLogin(t *testing.T) {
	quit := errors.New("user quit")
	ui := &fakeUI{loginErr: quit}
	auth := &fakeAuth{}

	err := newTestApp(t, ui, auth).Run(context.Background())

	assert.ErrorIs(t, err, quit)
	assert.Zero(t, ui.loops)
	assert.Zero(t, auth.logouts)
}

func TestApp_Run_MainLoopError(t *testing.T) {
	boom := errors.New("terminal closed")
	ui := &fakeUI{logouts: []bool{false}, loopErr: boom}

	err := newTestApp(t, ui, &fakeAuth{}).Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)
}
