package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Dharshan0025/neural-resq/internal/geo"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

type volunteerService struct {
	core   *geo.Core
	repo   VolunteerRepository
	logger *logrus.Logger
}

// NewVolunteerService создает сервис волонтеров поверх гео-ядра
func NewVolunteerService(core *geo.Core, repo VolunteerRepository, logger *logrus.Logger) VolunteerService {
	return &volunteerService{
		core:   core,
		repo:   repo,
		logger: logger,
	}
}

// Register регистрирует волонтера. Повторная регистрация не идемпотентна:
// второй вызов для того же user_id завершается ErrAlreadyRegistered,
// исходный профиль остается нетронутым.
func (s *volunteerService) Register(ctx context.Context, profile models.VolunteerProfile) (*models.VolunteerProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "Register",
		"user_id": profile.UserID,
	})
	log.Info("Registering volunteer")

	stored, err := s.core.Registry.Register(profile)
	if err != nil {
		log.WithError(err).Warn("Failed to register volunteer")
		return nil, fmt.Errorf("service: could not register volunteer: %w", err)
	}

	// Зеркалирование в бд best-effort: ядро в памяти авторитетно,
	// ошибка персистентности не откатывает регистрацию
	if err := s.repo.SaveProfile(ctx, &stored); err != nil {
		log.WithError(err).Error("Failed to persist volunteer profile")
	}

	log.Info("Volunteer registered successfully")
	return &stored, nil
}

// SetActive переключает активность волонтера и немедленно отражает
// изменение в индексе близости
func (s *volunteerService) SetActive(ctx context.Context, userID string, active bool) (*models.VolunteerProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "volunteer",
		"method":    "SetActive",
		"user_id":   userID,
		"is_active": active,
	})
	log.Info("Updating volunteer active flag")

	profile, err := s.core.Registry.SetActive(userID, active)
	if err != nil {
		log.WithError(err).Warn("Failed to update active flag")
		return nil, fmt.Errorf("service: could not update active flag: %w", err)
	}

	if err := s.repo.SaveProfile(ctx, &profile); err != nil {
		log.WithError(err).Error("Failed to persist volunteer profile")
	}
	if !active {
		if err := s.repo.RemoveGeo(ctx, userID); err != nil {
			log.WithError(err).Error("Failed to remove volunteer from geo mirror")
		}
	}

	log.Info("Volunteer active flag updated")
	return &profile, nil
}

// Get возвращает профиль волонтера
func (s *volunteerService) Get(ctx context.Context, userID string) (*models.VolunteerProfile, error) {
	profile, err := s.core.Registry.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get volunteer: %w", err)
	}
	return &profile, nil
}
