package tui

import "github.com/MKhiriev/go-family-tree/models"

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

// LoginResult is produced by the login command.
type LoginResult struct {
	User models.AuthUser
	Err  error
}

type quitMsg struct{}

type projectsLoadedMsg struct {
	projects []models.Project
	err      error
}

type membersLoadedMsg struct {
	projectID string
	members   []models.FamilyMember
	err       error
}

type suggestionsLoadedMsg struct {
	projectID   string
	suggestions []models.ResearchSuggestion
	err         error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
