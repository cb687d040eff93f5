package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/metrics"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/internal/validators"
	"github.com/MKhiriev/go-family-tree/models"
)

// Metric labels of the AI operations.
const (
	opAnalyzeDocument     = "analyze_document"
	opDetectRelationships = "detect_relationships"
	opResearchSuggestions = "research_suggestions"
	opStandardizeNames    = "standardize_names"
)

// defaultDetectionConfidence is stored for a detection without suggestions.
const defaultDetectionConfidence = 0.5

type aiService struct {
	client             adapter.AIClient
	analysisRepository store.AnalysisRepository
	memberRepository   store.FamilyMemberRepository
	documentRepository store.DocumentRepository
	guard              projectGuard
	validator          validators.Validator

	logger *logger.Logger
}

func NewAIService(client adapter.AIClient, storages *store.Storages, logger *logger.Logger) AIService {
	return &aiService{
		client:             client,
		analysisRepository: storages.AnalysisRepository,
		memberRepository:   storages.FamilyMemberRepository,
		documentRepository: storages.DocumentRepository,
		guard:              projectGuard{projects: storages.ProjectRepository},
		validator:          validators.NewStructValidator(),
		logger:             logger,
	}
}

// AnalyzeDocument extracts names, dates, places and relationships from a
// transcribed document. When DocumentID is set the document must belong to
// the project.
func (a *aiService) AnalyzeDocument(ctx context.Context, caller models.AuthUser, req models.AnalyzeDocumentRequest) (models.DocumentAnalysisResult, error) {
	if _, err := a.guard.load(ctx, caller, req.ProjectID); err != nil {
		return models.DocumentAnalysisResult{}, err
	}
	if req.DocumentID != nil {
		if _, err := a.documentRepository.GetDocument(ctx, req.ProjectID, *req.DocumentID); err != nil {
			return models.DocumentAnalysisResult{}, err
		}
	}

	return runAICall(ctx, a, aiCall[models.DocumentAnalysisResult]{
		operation:    opAnalyzeDocument,
		analysisType: models.AnalysisDocument,
		projectID:    req.ProjectID,
		documentID:   req.DocumentID,
		input:        req.DocumentContent,
		messages:     documentAnalysisMessages(req.DocumentType, req.DocumentContent),
		failure:      "failed to analyze document",
		confidence: func(r models.DocumentAnalysisResult) *float64 {
			return r.Confidence
		},
	})
}

// DetectRelationships suggests edges between the persons of a project.
// Suggestions naming ids that were not sent fail the whole reply.
func (a *aiService) DetectRelationships(ctx context.Context, caller models.AuthUser, projectID string) (models.RelationshipDetectionResult, error) {
	if _, err := a.guard.load(ctx, caller, projectID); err != nil {
		return models.RelationshipDetectionResult{}, err
	}

	members, err := a.memberRepository.ListFamilyMembers(ctx, projectID)
	if err != nil {
		return models.RelationshipDetectionResult{}, err
	}
	summaries := models.SummarizeMembers(members)

	messages, err := relationshipDetectionMessages(summaries)
	if err != nil {
		return models.RelationshipDetectionResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	input, err := json.Marshal(summaries)
	if err != nil {
		return models.RelationshipDetectionResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sent := make(map[string]struct{}, len(summaries))
	for _, m := range summaries {
		sent[m.ID] = struct{}{}
	}

	return runAICall(ctx, a, aiCall[models.RelationshipDetectionResult]{
		operation:    opDetectRelationships,
		analysisType: models.AnalysisRelationshipDetection,
		projectID:    projectID,
		input:        string(input),
		messages:     messages,
		failure:      "failed to detect relationships",
		check: func(r models.RelationshipDetectionResult) error {
			return checkSuggestedPersons(r, sent)
		},
		confidence: func(r models.RelationshipDetectionResult) *float64 {
			if len(r.Relationships) > 0 {
				return r.Relationships[0].Confidence
			}
			c := defaultDetectionConfidence
			return &c
		},
	})
}

// GetResearchSuggestions asks for research directions for a project and
// its persons.
func (a *aiService) GetResearchSuggestions(ctx context.Context, caller models.AuthUser, projectID string) (models.ResearchSuggestionsResult, error) {
	project, err := a.guard.load(ctx, caller, projectID)
	if err != nil {
		return models.ResearchSuggestionsResult{}, err
	}

	members, err := a.memberRepository.ListFamilyMembers(ctx, projectID)
	if err != nil {
		return models.ResearchSuggestionsResult{}, err
	}
	research := models.NewResearchInput(project, members)

	messages, err := researchSuggestionsMessages(research)
	if err != nil {
		return models.ResearchSuggestionsResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	input, err := json.Marshal(research)
	if err != nil {
		return models.ResearchSuggestionsResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return runAICall(ctx, a, aiCall[models.ResearchSuggestionsResult]{
		operation:    opResearchSuggestions,
		analysisType: models.AnalysisResearchSuggestion,
		projectID:    projectID,
		input:        string(input),
		messages:     messages,
		failure:      "failed to generate research suggestions",
	})
}

func (a *aiService) StandardizeNames(ctx context.Context, caller models.AuthUser, req models.StandardizeNamesRequest) (models.NameStandardizationResult, error) {
	if _, err := a.guard.load(ctx, caller, req.ProjectID); err != nil {
		return models.NameStandardizationResult{}, err
	}
	if len(req.Names) == 0 {
		return models.NameStandardizationResult{}, fmt.Errorf("%w: names are required", ErrInvalidDataProvided)
	}

	messages, err := nameStandardizationMessages(req.Names)
	if err != nil {
		return models.NameStandardizationResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	input, err := json.Marshal(req.Names)
	if err != nil {
		return models.NameStandardizationResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return runAICall(ctx, a, aiCall[models.NameStandardizationResult]{
		operation:    opStandardizeNames,
		analysisType: models.AnalysisNameStandardization,
		projectID:    req.ProjectID,
		input:        string(input),
		messages:     messages,
		failure:      "failed to standardize names",
	})
}

func (a *aiService) ListAnalyses(ctx context.Context, caller models.AuthUser, projectID string) ([]models.AIAnalysis, error) {
	if _, err := a.guard.load(ctx, caller, projectID); err != nil {
		return nil, err
	}

	return a.analysisRepository.ListAnalyses(ctx, projectID)
}

// aiCall describes one Build Prompt → Invoke → Parse & Persist exchange.
type aiCall[T any] struct {
	operation    string
	analysisType models.AnalysisType
	projectID    string
	documentID   *string

	// input is stored, truncated, in the audit record.
	input    string
	messages []models.ChatMessage

	// failure prefixes parse errors, e.g. "failed to analyze document".
	failure string

	// check runs after structural validation. Optional.
	check func(T) error

	// confidence picks the audit confidence. Nil stores NULL.
	confidence func(T) *float64
}

func runAICall[T any](ctx context.Context, a *aiService, call aiCall[T]) (T, error) {
	log := logger.FromContext(ctx).With().
		Str("operation", call.operation).
		Str("project_id", call.projectID).
		Logger()

	var zero T

	start := time.Now()
	resp, err := a.client.Complete(ctx, call.messages, models.AIRequestConfig{})
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveAICall(call.operation, metrics.OutcomeRequestFailed, elapsed, nil)
		log.Err(err).Str("func", "runAICall").Msg("AI request failed")
		return zero, err
	}

	result, err := parseAIReply[T](ctx, a.validator, resp.Content)
	if err == nil && call.check != nil {
		err = call.check(result)
	}
	if err != nil {
		metrics.ObserveAICall(call.operation, metrics.OutcomeParseFailed, elapsed, resp.Tokens)
		log.Err(err).Str("func", "runAICall").Int("content_length", len(resp.Content)).Msg("AI reply rejected")
		return zero, fmt.Errorf("%w: %s: %w", ErrAIResponseParse, call.failure, err)
	}

	analysis := models.AIAnalysis{
		ID:         utils.NewID(),
		ProjectID:  call.projectID,
		DocumentID: call.documentID,
		Type:       call.analysisType,
		Input:      utils.Truncate(call.input, models.AnalysisInputLimit),
		Output:     resp.Content,
		Model:      resp.Model,
		Tokens:     resp.Tokens,
	}
	if call.confidence != nil {
		analysis.Confidence = call.confidence(result)
	}

	if _, err = a.analysisRepository.CreateAnalysis(ctx, analysis); err != nil {
		metrics.ObserveAICall(call.operation, metrics.OutcomePersistFailed, elapsed, resp.Tokens)
		log.Err(err).Str("func", "runAICall").Msg("failed to store AI audit record")
		return zero, fmt.Errorf("storing AI audit record: %w", err)
	}

	metrics.ObserveAICall(call.operation, metrics.OutcomeSuccess, elapsed, resp.Tokens)
	log.Info().Str("analysis_id", analysis.ID).Str("model", analysis.Model).Msg("AI analysis stored")
	return result, nil
}

// parseAIReply decodes content as exactly one JSON value of type T and
// validates it. Whitespace around the value is the only tolerance.
func parseAIReply[T any](ctx context.Context, v validators.Validator, content string) (T, error) {
	var result T

	content = strings.TrimSpace(content)
	if content == "" {
		return result, errors.New("empty reply")
	}

	decoder := json.NewDecoder(strings.NewReader(content))
	if err := decoder.Decode(&result); err != nil {
		return result, fmt.Errorf("reply is not valid JSON: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return result, errors.New("reply has data after the JSON value")
	}

	if err := v.Validate(ctx, &result); err != nil {
		return result, err
	}
	return result, nil
}

// checkSuggestedPersons rejects suggestions that name persons not sent.
func checkSuggestedPersons(result models.RelationshipDetectionResult, sent map[string]struct{}) error {
	fields := make(map[string]string)
	for i, rel := range result.Relationships {
		if _, ok := sent[rel.Person1ID]; !ok {
			fields[fmt.Sprintf("relationships[%d].person1Id", i)] = "is not a family member of the project"
		}
		if _, ok := sent[rel.Person2ID]; !ok {
			fields[fmt.Sprintf("relationships[%d].person2Id", i)] = "is not a family member of the project"
		}
	}
	if len(fields) > 0 {
		return &validators.ValidationError{Fields: fields}
	}
	return nil
}
