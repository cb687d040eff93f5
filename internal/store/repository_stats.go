package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/models"
)

// statsRepository serves the admin dashboard aggregates.
type statsRepository struct {
	*DB
	logger *logger.Logger
}

func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAdminStats counts client accounts, active projects, document analyses
// and all AI audit rows in one round trip.
func (s *statsRepository) GetAdminStats(ctx context.Context) (models.AdminStats, error) {
	log := logger.FromContext(ctx)

	var stats models.AdminStats
	err := s.DB.QueryRowContext(ctx, getAdminStats).Scan(
		&stats.TotalClients,
		&stats.ActiveProjects,
		&stats.DocumentsAnalyzed,
		&stats.AIInsights,
	)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.GetAdminStats").Msg("failed to count admin stats")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}

func (s *statsRepository) ListClientOverviews(ctx context.Context) ([]models.ClientOverview, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListClientOverviewsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.ListClientOverviews").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.ClientOverview, 0)
	for rows.Next() {
		var client models.ClientOverview
		if scanErr := rows.Scan(&client.ID, &client.Name, &client.Email, &client.ProjectCount, &client.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*statsRepository.ListClientOverviews").Msg("failed to scan client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clients, nil
}
