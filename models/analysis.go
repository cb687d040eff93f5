package models

import "time"

// AnalysisType tags the AI operation an audit record belongs to.
type AnalysisType string

const (
	AnalysisDocument              AnalysisType = "DOCUMENT_ANALYSIS"
	AnalysisRelationshipDetection AnalysisType = "RELATIONSHIP_DETECTION"
	AnalysisResearchSuggestion    AnalysisType = "RESEARCH_SUGGESTION"
	AnalysisNameStandardization   AnalysisType = "NAME_STANDARDIZATION"
)

// AnalysisInputLimit caps the number of characters of the model input kept
// in an audit record.
const AnalysisInputLimit = 1000

// AIAnalysis is the audit record of one successful AI invocation.
type AIAnalysis struct {
	ID         string       `json:"id"`
	ProjectID  string       `json:"projectId"`
	DocumentID *string      `json:"documentId"`
	Type       AnalysisType `json:"type"`

	// Input is truncated to AnalysisInputLimit characters.
	Input string `json:"input"`

	// Output is the raw model text, exactly as received.
	Output string `json:"output"`

	Confidence *float64  `json:"confidence"`
	Model      string    `json:"model"`
	Tokens     *int      `json:"tokens"`
	CreatedAt  time.Time `json:"createdAt"`
}
