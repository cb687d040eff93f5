package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

var pageBodyStyle = lipgloss.NewStyle().PaddingLeft(2)

// renderPage lays out a screen as title, divider, body, divider and the key
// hints. An empty body renders as a single dash.
func renderPage(title, data, hotKeys string) string {
	if strings.TrimSpace(data) == "" {
		data = "-"
	}

	footer := []string{uiDivider}
	if strings.TrimSpace(hotKeys) != "" {
		footer = append(footer, helpStyle.Render(hotKeys))
	}
	footer = append(footer, helpStyle.Render("ctrl+c: quit"))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		pageBodyStyle.Render(uiDivider+"\n\n"+data+"\n"),
		pageBodyStyle.Render(strings.Join(footer, "\n")),
	)
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
