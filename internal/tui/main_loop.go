package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/models"
)

const statusTimeout = 3 * time.Second

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx      context.Context
	projects service.ClientProjectService
	user     models.AuthUser

	list    projectList
	detail  *projectDetail
	spinner spinner.Model

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, projects service.ClientProjectService, user models.AuthUser) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:      ctx,
		projects: projects,
		user:     user,
		list:     projectList{loading: true},
		spinner:  s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadProjects(), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.list.setProjects(msg.projects)
		return m, nil

	case membersLoadedMsg:
		if m.detail == nil || m.detail.project.ID != msg.projectID {
			return m, nil
		}
		m.detail.membersLoading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.detail.members = msg.members
		return m, nil

	case suggestionsLoadedMsg:
		if m.detail == nil || m.detail.project.ID != msg.projectID {
			return m, nil
		}
		m.detail.researching = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.detail.suggestions = msg.suggestions
		m.detail.researched = true
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied " + msg.text
		return m, clearStatusAfter(statusTimeout)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		if p, ok := m.selectedProject(); ok {
			return m, cmdCopy(p.ID)
		}
		return m, nil
	}

	if m.detail != nil {
		switch {
		case key.Matches(msg, keys.back):
			m.detail = nil
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, keys.research):
			if m.detail.researching {
				return m, nil
			}
			m.detail.researching = true
			m.errMsg = ""
			return m, m.cmdResearch(m.detail.project.ID)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.refresh):
		m.list.loading = true
		return m, m.cmdLoadProjects()
	case key.Matches(msg, keys.enter):
		p, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = &projectDetail{project: p, membersLoading: true}
		m.errMsg = ""
		return m, m.cmdLoadMembers(p.ID)
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	var body string
	var hotKeys string
	title := fmt.Sprintf("PROJECTS OF %s (%s)", m.user.Name, m.user.Role)

	if m.detail != nil {
		title = "PROJECT"
		body = m.detail.View(m.spinner.View())
		hotKeys = "esc: back │ r: research suggestions │ c: copy id │ l: sign out │ q: quit"
	} else {
		body = m.list.View(m.spinner.View())
		hotKeys = "enter: open │ ↑/↓: move │ s: refresh │ c: copy id │ l: sign out │ q: quit"
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	return appStyle.Render(renderPage(title, body, hotKeys))
}

func (m mainLoopModel) selectedProject() (models.Project, bool) {
	if m.detail != nil {
		return m.detail.project, true
	}
	return m.list.current()
}

func (m mainLoopModel) cmdLoadProjects() tea.Cmd {
	ctx, projects := m.ctx, m.projects
	return func() tea.Msg {
		list, err := projects.ListProjects(ctx)
		return projectsLoadedMsg{projects: list, err: err}
	}
}

func (m mainLoopModel) cmdLoadMembers(projectID string) tea.Cmd {
	ctx, projects := m.ctx, m.projects
	return func() tea.Msg {
		members, err := projects.ListFamilyMembers(ctx, projectID)
		return membersLoadedMsg{projectID: projectID, members: members, err: err}
	}
}

func (m mainLoopModel) cmdResearch(projectID string) tea.Cmd {
	ctx, projects := m.ctx, m.projects
	return func() tea.Msg {
		suggestions, err := projects.GetResearchSuggestions(ctx, projectID)
		return suggestionsLoadedMsg{projectID: projectID, suggestions: suggestions, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{text: text}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
