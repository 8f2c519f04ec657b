package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Dharshan0025/neural-resq/internal/config"
	"github.com/Dharshan0025/neural-resq/internal/geo"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

type matchingService struct {
	core   *geo.Core
	cfg    *config.Config
	logger *logrus.Logger
}

// NewMatchingService создает сервис поиска ближайших волонтеров
func NewMatchingService(core *geo.Core, cfg *config.Config, logger *logrus.Logger) MatchingService {
	return &matchingService{
		core:   core,
		cfg:    cfg,
		logger: logger,
	}
}

// QueryNearby ищет активных волонтеров в радиусе. Нулевой maxResults
// заменяется настроенным потолком, чтобы ответ оставался ограниченным.
func (s *matchingService) QueryNearby(ctx context.Context, lat, lon, radiusKm float64, maxResults int) (*models.NearbyResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "matching",
		"method":    "QueryNearby",
		"radius_km": radiusKm,
	})

	if maxResults <= 0 || maxResults > s.cfg.MaxNearbyResults {
		maxResults = s.cfg.MaxNearbyResults
	}

	result, err := s.core.Engine.Query(lat, lon, radiusKm, maxResults)
	if err != nil {
		log.WithError(err).Warn("Rejected nearby query")
		return nil, fmt.Errorf("service: could not query nearby volunteers: %w", err)
	}

	log.WithField("count", result.Count).Info("Nearby query completed")
	return &result, nil
}
