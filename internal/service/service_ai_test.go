package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/mock"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/internal/validators"
	"github.com/MKhiriev/go-family-tree/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type aiMocks struct {
	client    *mock.MockAIClient
	projects  *mock.MockProjectRepository
	members   *mock.MockFamilyMemberRepository
	documents *mock.MockDocumentRepository
	analyses  *mock.MockAnalysisRepository
}

func newTestAISvc(t *testing.T, ctrl *gomock.Controller) (AIService, aiMocks) {
	t.Helper()
	m := aiMocks{
		client:    mock.NewMockAIClient(ctrl),
		projects:  mock.NewMockProjectRepository(ctrl),
		members:   mock.NewMockFamilyMemberRepository(ctrl),
		documents: mock.NewMockDocumentRepository(ctrl),
		analyses:  mock.NewMockAnalysisRepository(ctrl),
	}
	storages := &store.Storages{
		ProjectRepository:      m.projects,
		FamilyMemberRepository: m.members,
		DocumentRepository:     m.documents,
		AnalysisRepository:     m.analyses,
	}
	return NewAIService(m.client, storages, logger.Nop()), m
}

func aiReply(content string) models.AIResponse {
	tokens := 150
	return models.AIResponse{Content: content, Model: "gpt-4", Tokens: &tokens}
}

const documentReply = `{
  "extractedNames": ["John Smith", "Mary Johnson"],
  "extractedDates": ["1875-06-12"],
  "extractedPlaces": ["Boston, Massachusetts"],
  "relationships": [{"person1": "John Smith", "person2": "Mary Johnson", "relationship": "SPOUSE", "confidence": 0.9}],
  "summary": "Marriage record",
  "confidence": 0.95
}`

var smithMembers = []models.FamilyMember{
	{ID: "john-smith-1850", ProjectID: "smith-family-project", FirstName: "John"},
	{ID: "william-smith-1880", ProjectID: "smith-family-project", FirstName: "William"},
}

// ── AnalyzeDocument ──────────────────────────────────────────────────────────

func TestAIService_AnalyzeDocument_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	docID := "doc-1"
	content := strings.Repeat("a", 1500)

	gomock.InOrder(
		m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil),
		m.documents.EXPECT().GetDocument(gomock.Any(), testProject.ID, docID).Return(models.Document{ID: docID}, nil),
		m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), models.AIRequestConfig{}).DoAndReturn(
			func(_ context.Context, msgs []models.ChatMessage, _ models.AIRequestConfig) (models.AIResponse, error) {
				require.Len(t, msgs, 2)
				assert.Equal(t, models.ChatRoleSystem, msgs[0].Role)
				assert.Equal(t, models.ChatRoleUser, msgs[1].Role)
				assert.Contains(t, msgs[1].Content, "MARRIAGE_RECORD")
				return aiReply(documentReply), nil
			},
		),
		m.analyses.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.AIAnalysis) (models.AIAnalysis, error) {
				assert.NotEmpty(t, a.ID)
				assert.Equal(t, models.AnalysisDocument, a.Type)
				assert.Equal(t, testProject.ID, a.ProjectID)
				require.NotNil(t, a.DocumentID)
				assert.Equal(t, docID, *a.DocumentID)
				assert.Len(t, []rune(a.Input), models.AnalysisInputLimit)
				assert.Equal(t, documentReply, a.Output)
				require.NotNil(t, a.Confidence)
				assert.InDelta(t, 0.95, *a.Confidence, 1e-9)
				assert.Equal(t, "gpt-4", a.Model)
				require.NotNil(t, a.Tokens)
				assert.Equal(t, 150, *a.Tokens)
				return a, nil
			},
		),
	)

	result, err := svc.AnalyzeDocument(context.Background(), testClient, models.AnalyzeDocumentRequest{
		DocumentContent: content,
		DocumentType:    "MARRIAGE_RECORD",
		ProjectID:       testProject.ID,
		DocumentID:      &docID,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"John Smith", "Mary Johnson"}, result.ExtractedNames)
	assert.Equal(t, "Marriage record", result.Summary)
}

func TestAIService_AnalyzeDocument_ParseFailureStoresNothing(t *testing.T) {
	replies := map[string]string{
		"not json":        "Sure! Here is the analysis you asked for.",
		"code fence":      "```json\n" + documentReply + "\n```",
		"trailing text":   documentReply + " thanks",
		"empty":           "   ",
		"missing summary": `{"extractedNames":[],"extractedDates":[],"extractedPlaces":[],"relationships":[],"confidence":0.5}`,
		"bad confidence":  `{"extractedNames":[],"extractedDates":[],"extractedPlaces":[],"relationships":[],"summary":"x","confidence":1.5}`,
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestAISvc(t, ctrl)
			m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
			m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(aiReply(reply), nil)
			m.analyses.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).Times(0)

			_, err := svc.AnalyzeDocument(context.Background(), testClient, models.AnalyzeDocumentRequest{
				DocumentContent: "text", DocumentType: "CENSUS", ProjectID: testProject.ID,
			})

			assert.ErrorIs(t, err, ErrAIResponseParse)
			assert.Contains(t, err.Error(), "failed to analyze document")
		})
	}
}

func TestAIService_AnalyzeDocument_RequestFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	upstream := fmt.Errorf("%w: status 503", adapter.ErrAIRequestFailed)

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.AIResponse{}, upstream)

	_, err := svc.AnalyzeDocument(context.Background(), testClient, models.AnalyzeDocumentRequest{
		DocumentContent: "text", DocumentType: "CENSUS", ProjectID: testProject.ID,
	})

	assert.ErrorIs(t, err, adapter.ErrAIRequestFailed)
	assert.NotErrorIs(t, err, ErrAIResponseParse)
}

func TestAIService_AnalyzeDocument_ForeignDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	docID := "johnson-doc"

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.documents.EXPECT().GetDocument(gomock.Any(), testProject.ID, docID).Return(models.Document{}, store.ErrDocumentNotFound)

	_, err := svc.AnalyzeDocument(context.Background(), testClient, models.AnalyzeDocumentRequest{
		DocumentContent: "text", DocumentType: "CENSUS", ProjectID: testProject.ID, DocumentID: &docID,
	})

	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestAIService_AnalyzeDocument_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)

	_, err := svc.AnalyzeDocument(context.Background(), testOther, models.AnalyzeDocumentRequest{
		DocumentContent: "text", DocumentType: "CENSUS", ProjectID: testProject.ID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAIService_AnalyzeDocument_PersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	dbErr := errors.New("disk full")

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(aiReply(documentReply), nil)
	m.analyses.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).Return(models.AIAnalysis{}, dbErr)

	_, err := svc.AnalyzeDocument(context.Background(), testClient, models.AnalyzeDocumentRequest{
		DocumentContent: "text", DocumentType: "CENSUS", ProjectID: testProject.ID,
	})

	assert.ErrorIs(t, err, dbErr)
}

// ── DetectRelationships ──────────────────────────────────────────────────────

func TestAIService_DetectRelationships_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	reply := `{"relationships":[{"person1Id":"john-smith-1850","person2Id":"william-smith-1880","relationshipType":"PARENT_CHILD","confidence":0.8,"reasoning":"surname and age gap"}]}`

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.members.EXPECT().ListFamilyMembers(gomock.Any(), testProject.ID).Return(smithMembers, nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs []models.ChatMessage, _ models.AIRequestConfig) (models.AIResponse, error) {
			assert.Contains(t, msgs[1].Content, "john-smith-1850")
			return aiReply(reply), nil
		},
	)
	m.analyses.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.AIAnalysis) (models.AIAnalysis, error) {
			assert.Equal(t, models.AnalysisRelationshipDetection, a.Type)
			assert.Nil(t, a.DocumentID)
			assert.Contains(t, a.Input, `"id":"william-smith-1880"`)
			require.NotNil(t, a.Confidence)
			assert.InDelta(t, 0.8, *a.Confidence, 1e-9)
			return a, nil
		},
	)

	result, err := svc.DetectRelationships(context.Background(), testClient, testProject.ID)

	require.NoError(t, err)
	require.Len(t, result.Relationships, 1)
	assert.Equal(t, models.RelationshipParentChild, result.Relationships[0].RelationshipType)
}

func TestAIService_DetectRelationships_NoSuggestionsUsesDefaultConfidence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.members.EXPECT().ListFamilyMembers(gomock.Any(), testProject.ID).Return(smithMembers[:1], nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(aiReply(`{"relationships":[]}`), nil)
	m.analyses.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.AIAnalysis) (models.AIAnalysis, error) {
			require.NotNil(t, a.Confidence)
			assert.InDelta(t, 0.5, *a.Confidence, 1e-9)
			return a, nil
		},
	)

	result, err := svc.DetectRelationships(context.Background(), testAdmin, testProject.ID)

	require.NoError(t, err)
	assert.Empty(t, result.Relationships)
}

func TestAIService_DetectRelationships_UnknownPerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	reply := `{"relationships":[{"person1Id":"john-smith-1850","person2Id":"robert-johnson","relationshipType":"SIBLING","confidence":0.4}]}`

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.members.EXPECT().ListFamilyMembers(gomock.Any(), testProject.ID).Return(smithMembers, nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(aiReply(reply), nil)
	m.analyses.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.DetectRelationships(context.Background(), testClient, testProject.ID)

	require.ErrorIs(t, err, ErrAIResponseParse)
	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "relationships[0].person2Id")
}

func TestAIService_DetectRelationships_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	reply := `{"relationships":[{"person1Id":"john-smith-1850","person2Id":"william-smith-1880","relationshipType":"FRIEND","confidence":0.4}]}`

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.members.EXPECT().ListFamilyMembers(gomock.Any(), testProject.ID).Return(smithMembers, nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(aiReply(reply), nil)

	_, err := svc.DetectRelationships(context.Background(), testClient, testProject.ID)

	assert.ErrorIs(t, err, ErrAIResponseParse)
}

// ── GetResearchSuggestions ───────────────────────────────────────────────────

func TestAIService_GetResearchSuggestions_NoConfidence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	reply := `{"suggestions":[{"suggestion":"Search the 1860 census","priority":"HIGH","resources":["FamilySearch"],"reasoning":"John appears in 1850"}]}`

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.members.EXPECT().ListFamilyMembers(gomock.Any(), testProject.ID).Return(smithMembers, nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs []models.ChatMessage, _ models.AIRequestConfig) (models.AIResponse, error) {
			assert.Contains(t, msgs[1].Content, testProject.Title)
			assert.Contains(t, msgs[1].Content, "No description")
			return aiReply(reply), nil
		},
	)
	m.analyses.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.AIAnalysis) (models.AIAnalysis, error) {
			assert.Equal(t, models.AnalysisResearchSuggestion, a.Type)
			assert.Nil(t, a.Confidence)
			return a, nil
		},
	)

	result, err := svc.GetResearchSuggestions(context.Background(), testClient, testProject.ID)

	require.NoError(t, err)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, models.PriorityHigh, result.Suggestions[0].Priority)
}

func TestAIService_GetResearchSuggestions_BadPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	reply := `{"suggestions":[{"suggestion":"x","priority":"URGENT","resources":[]}]}`

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.members.EXPECT().ListFamilyMembers(gomock.Any(), testProject.ID).Return(nil, nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(aiReply(reply), nil)

	_, err := svc.GetResearchSuggestions(context.Background(), testClient, testProject.ID)

	assert.ErrorIs(t, err, ErrAIResponseParse)
	assert.Contains(t, err.Error(), "failed to generate research suggestions")
}

// ── StandardizeNames ─────────────────────────────────────────────────────────

func TestAIService_StandardizeNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	reply := `{"standardizedNames":[{"original":"Wm. Smith","standardized":"William Smith","confidence":0.9}]}`

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(aiReply(reply), nil)
	m.analyses.EXPECT().CreateAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.AIAnalysis) (models.AIAnalysis, error) {
			assert.Equal(t, models.AnalysisNameStandardization, a.Type)
			assert.Equal(t, `["Wm. Smith"]`, a.Input)
			assert.Nil(t, a.Confidence)
			return a, nil
		},
	)

	result, err := svc.StandardizeNames(context.Background(), testClient, models.StandardizeNamesRequest{
		ProjectID: testProject.ID,
		Names:     []string{"Wm. Smith"},
	})

	require.NoError(t, err)
	assert.Equal(t, "William Smith", result.StandardizedNames[0].Standardized)
}

func TestAIService_StandardizeNames_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)

	_, err := svc.StandardizeNames(context.Background(), testClient, models.StandardizeNamesRequest{ProjectID: testProject.ID})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── parseAIReply ─────────────────────────────────────────────────────────────

func TestParseAIReply_SurroundingWhitespace(t *testing.T) {
	v := validators.NewStructValidator()

	result, err := parseAIReply[models.NameStandardizationResult](context.Background(), v,
		"\n\t"+`{"standardizedNames":[]}`+"\n  ")

	require.NoError(t, err)
	assert.NotNil(t, result.StandardizedNames)
}

func TestParseAIReply_MissingRequiredArray(t *testing.T) {
	v := validators.NewStructValidator()

	_, err := parseAIReply[models.NameStandardizationResult](context.Background(), v, `{}`)

	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestAIService_ListAnalyses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestAISvc(t, ctrl)
	rows := []models.AIAnalysis{{ID: "seed-analysis-document", CreatedAt: time.Now()}}

	m.projects.EXPECT().GetProject(gomock.Any(), testProject.ID).Return(testProject, nil)
	m.analyses.EXPECT().ListAnalyses(gomock.Any(), testProject.ID).Return(rows, nil)

	got, err := svc.ListAnalyses(context.Background(), testAdmin, testProject.ID)

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
