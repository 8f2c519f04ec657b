package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Dharshan0025/neural-resq/internal/config"
	"github.com/Dharshan0025/neural-resq/internal/geo"
	"github.com/Dharshan0025/neural-resq/internal/models"
	"github.com/Dharshan0025/neural-resq/internal/notification"
)

type dispatchService struct {
	core      *geo.Core
	repo      EmergencyRepository
	notifier  Notifier
	detector  DistressDetector
	publisher notification.PushPublisher
	cfg       *config.Config
	logger    *logrus.Logger
}

// NewDispatchService создает координатор диспетчеризации инцидентов
func NewDispatchService(core *geo.Core, repo EmergencyRepository, notifier Notifier, detector DistressDetector, publisher notification.PushPublisher, cfg *config.Config, logger *logrus.Logger) DispatchService {
	return &dispatchService{
		core:      core,
		repo:      repo,
		notifier:  notifier,
		detector:  detector,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// TriggerSOS создает инцидент по ручному сигналу SOS, рассылает SMS
// экстренным контактам и ставит push-событие для ближайших волонтеров.
// Оповещение best-effort: сбой по одному контакту не прерывает остальных,
// счетчик отражает только подтвержденные доставки.
func (s *dispatchService) TriggerSOS(ctx context.Context, userID string, lat, lon float64, additionalInfo string) (*models.Emergency, int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "TriggerSOS",
		"user_id": userID,
	})
	log.Info("SOS triggered")

	emergency := &models.Emergency{
		ID:             uuid.New(),
		UserID:         userID,
		DetectionType:  models.DetectionManual,
		IsConfirmed:    true,
		Latitude:       lat,
		Longitude:      lon,
		AdditionalInfo: additionalInfo,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.SaveEmergency(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to save emergency")
		return nil, 0, fmt.Errorf("service: could not save emergency: %w", err)
	}

	sent := s.notifyContacts(ctx, log, emergency)
	s.notifyNearby(ctx, log, emergency)

	log.WithFields(logrus.Fields{
		"emergency_id":       emergency.ID,
		"notifications_sent": sent,
	}).Info("SOS dispatched")
	return emergency, sent, nil
}

// notifyContacts рассылает SMS всем контактам с номером телефона и
// возвращает число подтвержденных доставок
func (s *dispatchService) notifyContacts(ctx context.Context, log *logrus.Entry, emergency *models.Emergency) int {
	contacts, err := s.repo.GetContacts(ctx, emergency.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load emergency contacts")
		return 0
	}

	message := fmt.Sprintf(
		"EMERGENCY: user %s has triggered an SOS. Location: %f,%f. Additional info: %s",
		emergency.UserID, emergency.Latitude, emergency.Longitude, emergency.AdditionalInfo,
	)

	sent := 0
	for _, contact := range contacts {
		if contact.Phone == "" {
			continue
		}
		if s.notifier.SendSMS(ctx, contact.Phone, message) {
			sent++
		}
	}
	return sent
}

// notifyNearby ищет активных волонтеров рядом с последней известной
// позицией репортера и публикует push-событие. Сбой не влияет на исход SOS.
func (s *dispatchService) notifyNearby(ctx context.Context, log *logrus.Entry, emergency *models.Emergency) {
	centerLat, centerLon := emergency.Latitude, emergency.Longitude
	if loc, err := s.core.Store.Get(emergency.UserID); err == nil {
		centerLat, centerLon = loc.Latitude, loc.Longitude
	}

	result, err := s.core.Engine.Query(centerLat, centerLon, s.cfg.DefaultRadiusKm, s.cfg.MaxNearbyResults)
	if err != nil {
		log.WithError(err).Warn("Failed to query nearby volunteers")
		return
	}
	if result.Count == 0 {
		log.Debug("No nearby volunteers to notify")
		return
	}

	recipients := make([]string, 0, result.Count)
	for _, v := range result.Volunteers {
		recipients = append(recipients, v.UserID)
	}

	event := notification.PushEvent{
		EmergencyID: emergency.ID.String(),
		UserID:      emergency.UserID,
		Title:       "SOS nearby",
		Body:        fmt.Sprintf("Emergency reported %0.1f km from you", result.Volunteers[0].DistanceKm),
		Recipients:  recipients,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish push event")
	}
}

// PredictDistress прогоняет аудио через внешний классификатор и записывает
// инцидент типа audio. Инцидент подтвержден, если максимальный score метки
// "distress" превышает настроенный порог.
func (s *dispatchService) PredictDistress(ctx context.Context, userID string, audio []byte) (*models.DistressResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "PredictDistress",
		"user_id": userID,
	})
	log.Info("Running distress detection")

	predictions, err := s.detector.Classify(ctx, audio)
	if err != nil {
		log.WithError(err).Error("Failed to classify audio")
		return nil, fmt.Errorf("service: could not classify audio: %w", err)
	}

	isDistress := false
	confidence := 0.0
	details := make([]map[string]any, 0, len(predictions))
	for _, p := range predictions {
		if p.Label == "distress" && p.Score > s.cfg.DistressThreshold {
			isDistress = true
		}
		if p.Score > confidence {
			confidence = p.Score
		}
		details = append(details, map[string]any{"label": p.Label, "score": p.Score})
	}

	emergency := &models.Emergency{
		ID:            uuid.New(),
		UserID:        userID,
		DetectionType: models.DetectionAudio,
		DetectionData: map[string]any{"result": details},
		IsConfirmed:   isDistress,
		CreatedAt:     time.Now(),
	}
	if loc, err := s.core.Store.Get(userID); err == nil {
		emergency.Latitude = loc.Latitude
		emergency.Longitude = loc.Longitude
	}

	if err := s.repo.SaveEmergency(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to save audio emergency")
		return nil, fmt.Errorf("service: could not save emergency: %w", err)
	}

	log.WithFields(logrus.Fields{
		"is_distress": isDistress,
		"confidence":  confidence,
	}).Info("Distress detection completed")

	return &models.DistressResult{
		IsDistress:  isDistress,
		Confidence:  confidence,
		Details:     predictions,
		EmergencyID: emergency.ID,
	}, nil
}

// ResolveEmergency закрывает инцидент. Переход open -> resolved
// терминальный: повторное закрытие завершается ошибкой.
func (s *dispatchService) ResolveEmergency(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "dispatch",
		"method":       "ResolveEmergency",
		"emergency_id": id,
	})

	if err := s.repo.ResolveEmergency(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to resolve emergency")
		return fmt.Errorf("service: could not resolve emergency: %w", err)
	}
	log.Info("Emergency resolved")
	return nil
}

// GetHistory возвращает инциденты пользователя за последние days дней
func (s *dispatchService) GetHistory(ctx context.Context, userID string, days int) ([]*models.Emergency, error) {
	if days < 1 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	emergencies, err := s.repo.GetEmergenciesByUser(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("service: could not get emergency history: %w", err)
	}
	return emergencies, nil
}

// GetAnalytics возвращает агрегированную статистику инцидентов пользователя
func (s *dispatchService) GetAnalytics(ctx context.Context, userID string, days int) (*models.EmergencyAnalytics, error) {
	if days < 1 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	analytics, err := s.repo.GetAnalytics(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("service: could not get analytics: %w", err)
	}
	analytics.TimePeriodDays = days
	return analytics, nil
}

// AddContact добавляет экстренный контакт пользователя
func (s *dispatchService) AddContact(ctx context.Context, contact *models.EmergencyContact) error {
	if err := s.repo.AddContact(ctx, contact); err != nil {
		return fmt.Errorf("service: could not add contact: %w", err)
	}
	return nil
}

// ListContacts возвращает экстренные контакты пользователя
func (s *dispatchService) ListContacts(ctx context.Context, userID string) ([]*models.EmergencyContact, error) {
	contacts, err := s.repo.GetContacts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list contacts: %w", err)
	}
	return contacts, nil
}
