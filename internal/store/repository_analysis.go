package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
)

// analysisRepository stores the AI audit trail in "ai_analyses".
type analysisRepository struct {
	*DB
	logger *logger.Logger
}

func NewAnalysisRepository(db *DB, logger *logger.Logger) AnalysisRepository {
	logger.Debug().Msg("creating analysis repository")
	return &analysisRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAnalysis appends one audit row. The caller truncates Input.
func (a *analysisRepository) CreateAnalysis(ctx context.Context, analysis models.AIAnalysis) (models.AIAnalysis, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, createAnalysis,
		analysis.ID,
		analysis.ProjectID,
		analysis.DocumentID,
		string(analysis.Type),
		analysis.Input,
		analysis.Output,
		analysis.Confidence,
		analysis.Model,
		analysis.Tokens,
	)

	var created models.AIAnalysis
	if err := scanAnalysis(row, &created); err != nil {
		log.Err(err).
			Str("func", "*analysisRepository.CreateAnalysis").
			Str("project_id", analysis.ProjectID).
			Str("type", string(analysis.Type)).
			Msg("failed to insert ai analysis")
		return models.AIAnalysis{}, a.DB.writeError(err, nil)
	}

	return created, nil
}

// ListAnalyses returns the audit rows of a project, newest first.
func (a *analysisRepository) ListAnalyses(ctx context.Context, projectID string) ([]models.AIAnalysis, error) {
	log := logger.FromContext(ctx)

	rows, err := a.DB.QueryContext(ctx, listAnalyses, projectID)
	if err != nil {
		log.Err(err).Str("func", "*analysisRepository.ListAnalyses").Str("project_id", projectID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	analyses := make([]models.AIAnalysis, 0)
	for rows.Next() {
		var analysis models.AIAnalysis
		if scanErr := scanAnalysis(rows, &analysis); scanErr != nil {
			log.Err(scanErr).Str("func", "*analysisRepository.ListAnalyses").Msg("failed to scan analysis row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		analyses = append(analyses, analysis)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return analyses, nil
}

func scanAnalysis(row rowScanner, analysis *models.AIAnalysis) error {
	return row.Scan(
		&analysis.ID,
		&analysis.ProjectID,
		&analysis.DocumentID,
		&analysis.Type,
		&analysis.Input,
		&analysis.Output,
		&analysis.Confidence,
		&analysis.Model,
		&analysis.Tokens,
		&analysis.CreatedAt,
	)
}
