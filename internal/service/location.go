package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Dharshan0025/neural-resq/internal/geo"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

type locationService struct {
	core   *geo.Core
	repo   VolunteerRepository
	logger *logrus.Logger
}

// NewLocationService создает сервис позиций поверх гео-ядра
func NewLocationService(core *geo.Core, repo VolunteerRepository, logger *logrus.Logger) LocationService {
	return &locationService{
		core:   core,
		repo:   repo,
		logger: logger,
	}
}

// UpdateLocation применяет пинг геолокации. Ядро само отбрасывает
// устаревшие по observed_at обновления и синхронно поддерживает индекс;
// зеркалирование в бд и Redis GEO - best-effort.
func (s *locationService) UpdateLocation(ctx context.Context, loc models.UserLocation) (*models.UserLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "UpdateLocation",
		"user_id": loc.UserID,
	})

	current, err := s.core.Store.Update(loc)
	if err != nil {
		log.WithError(err).Warn("Rejected location update")
		return nil, fmt.Errorf("service: could not update location: %w", err)
	}

	if err := s.repo.SaveLocation(ctx, &current); err != nil {
		log.WithError(err).Error("Failed to persist location")
	}
	if s.core.Registry.IsActive(current.UserID) {
		if err := s.repo.AddGeo(ctx, current.UserID, current.Latitude, current.Longitude); err != nil {
			log.WithError(err).Error("Failed to update geo mirror")
		}
	}

	log.Debug("Location updated")
	return &current, nil
}

// GetLocation возвращает последнюю известную позицию пользователя
func (s *locationService) GetLocation(ctx context.Context, userID string) (*models.UserLocation, error) {
	loc, err := s.core.Store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get location: %w", err)
	}
	return &loc, nil
}
