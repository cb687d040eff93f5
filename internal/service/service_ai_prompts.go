package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-family-tree/models"
)

// System prompts. Each one carries the JSON shape the reply is parsed into.
const (
	documentAnalysisPrompt = `You are an expert genealogist and document analyzer. Analyze the provided document and extract genealogical information in a structured format. Focus on names, dates, places, and relationships.

Return your analysis in the following JSON format:
{
  "extractedNames": ["name1", "name2"],
  "extractedDates": ["1850-03-15", "1920-12-31"],
  "extractedPlaces": ["New York, NY", "Boston, MA"],
  "relationships": [
    {
      "person1": "John Smith",
      "person2": "Mary Smith",
      "relationship": "spouse",
      "confidence": 0.95
    }
  ],
  "summary": "Brief summary of the document content",
  "confidence": 0.85
}`

	relationshipDetectionPrompt = `You are an expert genealogist. Analyze the provided family members and suggest potential relationships based on names, dates, and places. Consider common patterns in family naming, geographic proximity, and time periods. Only use the ids of the family members provided.

Return your analysis in JSON format:
{
  "relationships": [
    {
      "person1Id": "id1",
      "person2Id": "id2",
      "relationshipType": "PARENT_CHILD",
      "confidence": 0.8,
      "reasoning": "Age difference and shared surname suggest parent-child relationship"
    }
  ]
}

relationshipType must be one of: PARENT_CHILD, SPOUSE, SIBLING, GRANDPARENT_GRANDCHILD, AUNT_UNCLE, COUSIN, OTHER.`

	researchSuggestionsPrompt = `You are an expert genealogy researcher. Based on the project information and family members provided, suggest specific research directions, resources, and strategies. Focus on actionable recommendations.

Return suggestions in JSON format:
{
  "suggestions": [
    {
      "suggestion": "Search census records for John Smith in New York between 1850-1860",
      "priority": "HIGH",
      "resources": ["Ancestry.com", "FamilySearch.org", "New York State Archives"],
      "reasoning": "Given birth date and location, census records are most likely to provide family structure"
    }
  ]
}

priority must be one of: HIGH, MEDIUM, LOW.`

	nameStandardizationPrompt = `You are an expert genealogist specializing in name standardization. Standardize the provided names according to common genealogical practices, accounting for spelling variations, nicknames, and historical naming conventions.

Return standardization in JSON format:
{
  "standardizedNames": [
    {
      "original": "Jno. Smyth",
      "standardized": "John Smith",
      "confidence": 0.95
    }
  ]
}`
)

const noDescription = "No description"

func chat(system, user string) []models.ChatMessage {
	return []models.ChatMessage{
		{Role: models.ChatRoleSystem, Content: system},
		{Role: models.ChatRoleUser, Content: user},
	}
}

func documentAnalysisMessages(documentType, content string) []models.ChatMessage {
	return chat(documentAnalysisPrompt, fmt.Sprintf("Document Type: %s\n\nDocument Content:\n%s", documentType, content))
}

func relationshipDetectionMessages(members []models.MemberSummary) ([]models.ChatMessage, error) {
	payload, err := json.MarshalIndent(members, "", "  ")
	if err != nil {
		return nil, err
	}
	return chat(relationshipDetectionPrompt, "Family Members:\n"+string(payload)), nil
}

func researchSuggestionsMessages(input models.ResearchInput) ([]models.ChatMessage, error) {
	payload, err := json.MarshalIndent(input.FamilyMembers, "", "  ")
	if err != nil {
		return nil, err
	}

	description := noDescription
	if input.Description != nil && *input.Description != "" {
		description = *input.Description
	}
	return chat(researchSuggestionsPrompt,
		fmt.Sprintf("Project: %s\nDescription: %s\n\nFamily Members:\n%s", input.Title, description, payload),
	), nil
}

func nameStandardizationMessages(names []string) ([]models.ChatMessage, error) {
	payload, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, err
	}
	return chat(nameStandardizationPrompt, "Names to standardize:\n"+string(payload)), nil
}
