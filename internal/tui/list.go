package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-family-tree/models"
)

const projectTitleWidth = 32

type projectList struct {
	projects []models.Project
	idx      int
	loading  bool
}

func (l *projectList) setProjects(projects []models.Project) {
	l.projects = projects
	if l.idx >= len(l.projects) {
		l.idx = len(l.projects) - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l *projectList) move(delta int) {
	next := l.idx + delta
	if next >= 0 && next < len(l.projects) {
		l.idx = next
	}
}

func (l projectList) current() (models.Project, bool) {
	if len(l.projects) == 0 || l.idx < 0 || l.idx >= len(l.projects) {
		return models.Project{}, false
	}
	return l.projects[l.idx], true
}

func statusIcon(s models.ProjectStatus) string {
	switch s {
	case models.ProjectStatusActive:
		return "[A]"
	case models.ProjectStatusOnHold:
		return "[H]"
	case models.ProjectStatusCompleted:
		return "[C]"
	case models.ProjectStatusArchived:
		return "[X]"
	default:
		return "[?]"
	}
}

func (l projectList) View(spin string) string {
	if l.loading {
		return spin + " Loading projects..."
	}
	if len(l.projects) == 0 {
		return "No projects yet"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-3s %-*s %7s %5s %4s\n", "", projectTitleWidth, "Title", "Members", "Docs", "Rels"))
	for i, p := range l.projects {
		var counts models.ProjectCounts
		if p.Counts != nil {
			counts = *p.Counts
		}
		row := fmt.Sprintf("%s %-*s %7d %5d %4d",
			statusIcon(p.Status), projectTitleWidth, fitText(p.Title, projectTitleWidth),
			counts.FamilyMembers, counts.Documents, counts.Relationships)

		if i == l.idx {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
