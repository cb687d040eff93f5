package models

// Chat roles understood by the completion endpoint.
const (
	ChatRoleSystem = "system"
	ChatRoleUser   = "user"
)

// ChatMessage is one role-tagged message of a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIRequestConfig overrides the client defaults for one call.
// Each field is applied independently; nil means "use the default".
type AIRequestConfig struct {
	Model       *string
	MaxTokens   *int
	Temperature *float64
}

// AIResponse is the useful part of a completion.
type AIResponse struct {
	// Content is the text of the first choice.
	Content string
	// Model is the model identifier the request was sent with.
	Model string
	// Tokens is usage.total_tokens when the endpoint reports it.
	Tokens *int
}

// ExtractedRelationship is a relationship mentioned in a document, named by
// the people involved rather than by member ids.
type ExtractedRelationship struct {
	Person1      string   `json:"person1" validate:"required"`
	Person2      string   `json:"person2" validate:"required"`
	Relationship string   `json:"relationship" validate:"required"`
	Confidence   *float64 `json:"confidence" validate:"required,gte=0,lte=1"`
}

// DocumentAnalysisResult is what the model extracts from a document.
type DocumentAnalysisResult struct {
	ExtractedNames  []string                `json:"extractedNames" validate:"required"`
	ExtractedDates  []string                `json:"extractedDates" validate:"required"`
	ExtractedPlaces []string                `json:"extractedPlaces" validate:"required"`
	Relationships   []ExtractedRelationship `json:"relationships" validate:"required,dive"`
	Summary         string                  `json:"summary" validate:"required"`
	Confidence      *float64                `json:"confidence" validate:"required,gte=0,lte=1"`
}

// RelationshipSuggestion proposes an edge between two sent members.
type RelationshipSuggestion struct {
	Person1ID        string           `json:"person1Id" validate:"required"`
	Person2ID        string           `json:"person2Id" validate:"required,nefield=Person1ID"`
	RelationshipType RelationshipType `json:"relationshipType" validate:"required,relationship_type"`
	Confidence       *float64         `json:"confidence" validate:"required,gte=0,lte=1"`
	Reasoning        string           `json:"reasoning"`
}

// RelationshipDetectionResult is the parsed relationship detection reply.
type RelationshipDetectionResult struct {
	Relationships []RelationshipSuggestion `json:"relationships" validate:"required,dive"`
}

// ResearchPriority ranks a research suggestion.
type ResearchPriority string

const (
	PriorityHigh   ResearchPriority = "HIGH"
	PriorityMedium ResearchPriority = "MEDIUM"
	PriorityLow    ResearchPriority = "LOW"
)

// ResearchSuggestion is one actionable research direction.
type ResearchSuggestion struct {
	Suggestion string           `json:"suggestion" validate:"required"`
	Priority   ResearchPriority `json:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
	Resources  []string         `json:"resources" validate:"required"`
	Reasoning  string           `json:"reasoning"`
}

// ResearchSuggestionsResult is the parsed research assistant reply.
type ResearchSuggestionsResult struct {
	Suggestions []ResearchSuggestion `json:"suggestions" validate:"required,dive"`
}

// StandardizedName maps a raw name to its standard form.
type StandardizedName struct {
	Original     string   `json:"original" validate:"required"`
	Standardized string   `json:"standardized" validate:"required"`
	Confidence   *float64 `json:"confidence" validate:"required,gte=0,lte=1"`
}

// NameStandardizationResult is the parsed name standardization reply.
type NameStandardizationResult struct {
	StandardizedNames []StandardizedName `json:"standardizedNames" validate:"required,dive"`
}

// DocumentAnalysisInput is the input of a document analysis.
type DocumentAnalysisInput struct {
	Content      string
	DocumentType string
	ProjectID    string
	DocumentID   *string
}

// MemberSummary is the view of a family member sent to the model for
// relationship detection.
type MemberSummary struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   *string `json:"lastName,omitempty"`
	BirthDate  *Date   `json:"birthDate,omitempty"`
	DeathDate  *Date   `json:"deathDate,omitempty"`
	BirthPlace *string `json:"birthPlace,omitempty"`
}

// ResearchMember is the view of a family member sent to the model for
// research suggestions.
type ResearchMember struct {
	FirstName  string  `json:"firstName"`
	LastName   *string `json:"lastName,omitempty"`
	BirthDate  *Date   `json:"birthDate,omitempty"`
	BirthPlace *string `json:"birthPlace,omitempty"`
}

// ResearchInput is the project context of a research suggestion request.
type ResearchInput struct {
	Title         string           `json:"title"`
	Description   *string          `json:"description,omitempty"`
	FamilyMembers []ResearchMember `json:"familyMembers"`
}

// SummarizeMembers converts members into their relationship detection view.
func SummarizeMembers(members []FamilyMember) []MemberSummary {
	out := make([]MemberSummary, 0, len(members))
	for _, m := range members {
		out = append(out, MemberSummary{
			ID:         m.ID,
			FirstName:  m.FirstName,
			LastName:   m.LastName,
			BirthDate:  m.BirthDate,
			DeathDate:  m.DeathDate,
			BirthPlace: m.BirthPlace,
		})
	}
	return out
}

// NewResearchInput builds the research context of a project.
func NewResearchInput(project Project, members []FamilyMember) ResearchInput {
	in := ResearchInput{
		Title:         project.Title,
		Description:   project.Description,
		FamilyMembers: make([]ResearchMember, 0, len(members)),
	}
	for _, m := range members {
		in.FamilyMembers = append(in.FamilyMembers, ResearchMember{
			FirstName:  m.FirstName,
			LastName:   m.LastName,
			BirthDate:  m.BirthDate,
			BirthPlace: m.BirthPlace,
		})
	}
	return in
}
