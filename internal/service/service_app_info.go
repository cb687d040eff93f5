package service

import (
	"context"

	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
)

// Pinger reports whether a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.CheckHealth").Msg("database ping failed")
		return err
	}
	return nil
}
