package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
)

type documentService struct {
	documentRepository store.DocumentRepository
	guard              projectGuard

	logger *logger.Logger
}

func NewDocumentService(projectRepository store.ProjectRepository, documentRepository store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		guard:              projectGuard{projects: projectRepository},
		logger:             logger,
	}
}

func (d *documentService) ListDocuments(ctx context.Context, caller models.AuthUser, projectID string) ([]models.Document, error) {
	if _, err := d.guard.load(ctx, caller, projectID); err != nil {
		return nil, err
	}

	return d.documentRepository.ListDocuments(ctx, projectID)
}

func (d *documentService) GetDocument(ctx context.Context, caller models.AuthUser, projectID, documentID string) (models.Document, error) {
	if _, err := d.guard.load(ctx, caller, projectID); err != nil {
		return models.Document{}, err
	}

	return d.documentRepository.GetDocument(ctx, projectID, documentID)
}

// CreateDocument records document metadata and its transcribed text.
func (d *documentService) CreateDocument(ctx context.Context, caller models.AuthUser, projectID string, req models.CreateDocumentRequest) (models.Document, error) {
	if _, err := d.guard.load(ctx, caller, projectID); err != nil {
		return models.Document{}, err
	}

	document := models.Document{
		ID:           utils.NewID(),
		ProjectID:    projectID,
		Title:        strings.TrimSpace(req.Title),
		Type:         strings.TrimSpace(req.Type),
		FileName:     req.FileName,
		MimeType:     req.MimeType,
		Content:      req.Content,
		UploadedByID: caller.ID,
	}
	if document.Title == "" || document.Type == "" {
		logger.FromContext(ctx).Error().Str("project_id", projectID).Msg("document title or type is blank")
		return models.Document{}, fmt.Errorf("%w: title and type are required", ErrInvalidDataProvided)
	}

	created, err := d.documentRepository.CreateDocument(ctx, document)
	if err != nil {
		return models.Document{}, fmt.Errorf("document creation ended with error: %w", err)
	}
	return created, nil
}

// DeleteDocument removes a document. Audit records that referenced it keep
// their content and lose only the reference.
func (d *documentService) DeleteDocument(ctx context.Context, caller models.AuthUser, projectID, documentID string) error {
	if _, err := d.guard.load(ctx, caller, projectID); err != nil {
		return err
	}

	return d.documentRepository.DeleteDocument(ctx, projectID, documentID)
}
