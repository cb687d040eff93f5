package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-family-tree/models"
)

const (
	pageMenu  = "menu"
	pageLogin = "login"
)

// RootModel is the router of the sign-in flow:
// it keeps the active page, handles the global ctrl+c and NavigateTo
// messages, and delegates everything else to the active page.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	user       models.AuthUser
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}
		r.showBuildInfo = false
		r.current = next
		return r, r.current.Init()
	case quitMsg:
		r.quitByUser = true
		return r, tea.Quit
	case LoginResult:
		if msg.Err == nil {
			r.user = msg.User
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return renderPage("FAMILY TREE", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
