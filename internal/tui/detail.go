package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-family-tree/models"
)

type projectDetail struct {
	project models.Project

	members        []models.FamilyMember
	membersLoading bool

	suggestions []models.ResearchSuggestion
	researching bool
	researched  bool
}

func (d projectDetail) View(spin string) string {
	var b strings.Builder
	p := d.project

	b.WriteString(titleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("ID:          %s\n", p.ID))
	b.WriteString(fmt.Sprintf("Status:      %s\n", p.Status))
	if p.Client != nil {
		b.WriteString(fmt.Sprintf("Client:      %s <%s>\n", p.Client.Name, p.Client.Email))
	}
	b.WriteString(fmt.Sprintf("Description: %s\n", valueOrDash(p.Description)))

	b.WriteString("\nFamily members\n")
	switch {
	case d.membersLoading:
		b.WriteString(spin + " loading...\n")
	case len(d.members) == 0:
		b.WriteString("  none recorded\n")
	default:
		for _, fm := range d.members {
			b.WriteString("  - ")
			b.WriteString(fm.FullName())
			if life := lifespan(fm); life != "" {
				b.WriteString(" (" + life + ")")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nResearch suggestions\n")
	switch {
	case d.researching:
		b.WriteString(spin + " asking the research assistant...\n")
	case !d.researched:
		b.WriteString(helpStyle.Render("  press r to generate"))
		b.WriteString("\n")
	case len(d.suggestions) == 0:
		b.WriteString("  no suggestions\n")
	default:
		for i, s := range d.suggestions {
			b.WriteString(fmt.Sprintf("  %d. [%s] %s\n", i+1, s.Priority, s.Suggestion))
			if len(s.Resources) > 0 {
				b.WriteString("     resources: " + strings.Join(s.Resources, ", ") + "\n")
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func lifespan(fm models.FamilyMember) string {
	if fm.BirthDate == nil && fm.DeathDate == nil {
		return ""
	}
	birth, death := "?", ""
	if fm.BirthDate != nil {
		birth = fm.BirthDate.String()
	}
	if fm.DeathDate != nil {
		death = fm.DeathDate.String()
	}
	return birth + " - " + death
}
