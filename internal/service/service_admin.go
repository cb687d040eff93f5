package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/models"
)

type adminService struct {
	statsRepository store.StatsRepository

	logger *logger.Logger
}

func NewAdminService(statsRepository store.StatsRepository, logger *logger.Logger) AdminService {
	return &adminService{
		statsRepository: statsRepository,
		logger:          logger,
	}
}

// GetStats returns the dashboard totals. DocumentsAnalyzed counts document
// analyses; AIInsights counts every audit record.
func (a *adminService) GetStats(ctx context.Context, caller models.AuthUser) (models.AdminStats, error) {
	if err := requireAdmin(caller); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", caller.ID).Msg("admin stats refused")
		return models.AdminStats{}, err
	}

	return a.statsRepository.GetAdminStats(ctx)
}

func (a *adminService) ListClients(ctx context.Context, caller models.AuthUser) ([]models.ClientOverview, error) {
	if err := requireAdmin(caller); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", caller.ID).Msg("client listing refused")
		return nil, err
	}

	return a.statsRepository.ListClientOverviews(ctx)
}

func requireAdmin(caller models.AuthUser) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleClient:
		return ErrAccessDenied
	default:
		return fmt.Errorf("%w: %w", ErrAccessDenied, models.ErrUnknownRole)
	}
}
