package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/models"
)

type fakeAuth struct {
	user  models.AuthUser
	err   error
	email string
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (models.AuthUser, error) {
	f.email = email
	return f.user, f.err
}

func (f *fakeAuth) Logout(context.Context) error { return nil }

func (f *fakeAuth) CurrentUser(context.Context) (models.AuthUser, error) { return f.user, f.err }

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestLoginModel_RequiresFields(t *testing.T) {
	m := NewLoginModel(context.Background(), &fakeAuth{})

	next, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", next.(*LoginModel).errMsg)
}

func TestLoginModel_Submit(t *testing.T) {
	auth := &fakeAuth{user: models.AuthUser{ID: "seed-client", Role: models.RoleClient}}
	var m tea.Model = NewLoginModel(context.Background(), auth)

	m = typeText(m, " client@example.com ")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "password123")

	m, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.(*LoginModel).submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, "client@example.com", auth.email)
	assert.Equal(t, "seed-client", result.User.ID)
}

func TestLoginModel_ShowsFailure(t *testing.T) {
	m := NewLoginModel(context.Background(), &fakeAuth{})

	next, _ := m.Update(LoginResult{Err: service.ErrWrongCredentials})

	assert.Equal(t, "Invalid email or password", next.(*LoginModel).errMsg)
	assert.False(t, next.(*LoginModel).submitting)
}

func TestRootModel_FinishesOnLogin(t *testing.T) {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(context.Background(), &fakeAuth{}),
	}
	root := NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))

	next, cmd := root.Update(NavigateTo{Page: pageLogin})
	root = next.(RootModel)
	assert.NotNil(t, cmd)
	_, onLogin := root.current.(*LoginModel)
	assert.True(t, onLogin)

	user := models.AuthUser{ID: "seed-admin", Role: models.RoleAdmin}
	next, cmd = root.Update(LoginResult{User: user})
	root = next.(RootModel)
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)
	assert.Equal(t, user, root.user)
	assert.False(t, root.quitByUser)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	pages := map[string]tea.Model{pageMenu: NewMenuModel()}
	root := NewRootModel(pages, pageMenu, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))

	next, _ := root.Update(keyPress("v"))
	root = next.(RootModel)

	assert.Contains(t, root.View(), "1.2.3")
	assert.Contains(t, root.View(), "abc123")
}
