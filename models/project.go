package models

import (
	"fmt"
	"time"
)

// ProjectStatus is the lifecycle state of a research project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusArchived  ProjectStatus = "ARCHIVED"
)

// ParseProjectStatus converts s into a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch status := ProjectStatus(s); status {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived:
		return status, nil
	default:
		return "", fmt.Errorf("unknown project status %q", s)
	}
}

// Project is a research engagement owned by exactly one client.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Status      ProjectStatus `json:"status"`

	// ClientID references the owning user. Ownership never changes.
	ClientID string `json:"clientId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Client and Counts are filled only by listings.
	Client *ClientSummary `json:"client,omitempty"`
	Counts *ProjectCounts `json:"counts,omitempty"`
}

// ClientSummary is the public part of a project owner.
type ClientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectCounts holds the number of child rows of a project.
type ProjectCounts struct {
	Documents     int `json:"documents"`
	FamilyMembers int `json:"familyMembers"`
	Relationships int `json:"relationships"`
}

// ProjectFilter scopes a project listing.
// An empty ClientID lists projects of every client.
type ProjectFilter struct {
	ClientID string
}

// ProjectUpdate is a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Status      *ProjectStatus
}

// IsEmpty reports whether the update changes nothing.
func (u ProjectUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}
