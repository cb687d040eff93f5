package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	menuSignIn = iota
	menuQuit
)

type MenuModel struct {
	items []string
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Sign in", "Quit"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx == menuQuit {
			return m, func() tea.Msg { return quitMsg{} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2 // "<marker> <id>"
	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		row := fmt.Sprintf("%-*s │ %-*s", idColWidth, idCell, actionColWidth, item)
		if i == m.idx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return renderPage("FAMILY TREE", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: version")
}
