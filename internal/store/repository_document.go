package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
)

type documentRepository struct {
	*DB
	logger *logger.Logger
}

func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *documentRepository) ListDocuments(ctx context.Context, projectID string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := d.DB.QueryContext(ctx, listDocuments, projectID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Str("project_id", projectID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0)
	for rows.Next() {
		var document models.Document
		if scanErr := scanDocument(rows, &document); scanErr != nil {
			log.Err(scanErr).Str("func", "*documentRepository.ListDocuments").Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		documents = append(documents, document)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}

func (d *documentRepository) GetDocument(ctx context.Context, projectID, id string) (models.Document, error) {
	log := logger.FromContext(ctx)

	var document models.Document
	if err := scanDocument(d.DB.QueryRowContext(ctx, getDocument, projectID, id), &document); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*documentRepository.GetDocument").Str("document_id", id).Msg("failed to scan document")
		}
		return models.Document{}, rowError(err, ErrDocumentNotFound)
	}

	return document, nil
}

func (d *documentRepository) CreateDocument(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := d.DB.QueryRowContext(ctx, createDocument,
		document.ID,
		document.ProjectID,
		document.Title,
		document.Type,
		document.FileName,
		document.MimeType,
		document.Content,
		document.UploadedByID,
	)

	var created models.Document
	if err := scanDocument(row, &created); err != nil {
		log.Err(err).Str("func", "*documentRepository.CreateDocument").Str("project_id", document.ProjectID).Msg("failed to insert document")
		return models.Document{}, d.DB.writeError(err, nil)
	}

	return created, nil
}

// DeleteDocument removes the document. Audit rows that referenced it keep
// their project and lose the document id.
func (d *documentRepository) DeleteDocument(ctx context.Context, projectID, id string) error {
	log := logger.FromContext(ctx)

	result, err := d.DB.ExecContext(ctx, deleteDocument, projectID, id)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteDocument").Str("document_id", id).Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrDocumentNotFound)
}

func scanDocument(row rowScanner, document *models.Document) error {
	return row.Scan(
		&document.ID,
		&document.ProjectID,
		&document.Title,
		&document.Type,
		&document.FileName,
		&document.MimeType,
		&document.Content,
		&document.UploadedByID,
		&document.CreatedAt,
	)
}
