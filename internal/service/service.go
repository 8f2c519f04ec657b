package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Dharshan0025/neural-resq/internal/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// VolunteerRepository определяет контракт долговременного зеркала профилей
// и позиций. Ядро в памяти авторитетно; зеркало нужно для прогрева после
// рестарта и для GEO-реплики в Redis.
type VolunteerRepository interface {
	SaveProfile(ctx context.Context, profile *models.VolunteerProfile) error
	SaveLocation(ctx context.Context, loc *models.UserLocation) error
	LoadProfiles(ctx context.Context) ([]*models.VolunteerProfile, error)
	LoadLocations(ctx context.Context) ([]*models.UserLocation, error)
	AddGeo(ctx context.Context, userID string, lat, lon float64) error
	RemoveGeo(ctx context.Context, userID string) error
}

// EmergencyRepository определяет контракт для работы с бд инцидентов
type EmergencyRepository interface {
	SaveEmergency(ctx context.Context, emergency *models.Emergency) error
	GetEmergenciesByUser(ctx context.Context, userID string, since time.Time) ([]*models.Emergency, error)
	ResolveEmergency(ctx context.Context, id uuid.UUID) error
	GetAnalytics(ctx context.Context, userID string, since time.Time) (*models.EmergencyAnalytics, error)
	GetContacts(ctx context.Context, userID string) ([]*models.EmergencyContact, error)
	AddContact(ctx context.Context, contact *models.EmergencyContact) error
}

// Notifier отправляет SMS. Вызов best-effort: false означает, что доставка
// не подтверждена, и это не ошибка операции.
type Notifier interface {
	SendSMS(ctx context.Context, phone, message string) bool
}

// DistressDetector - внешний классификатор аудио. Ядро потребляет только
// максимальный score метки "distress" против порога.
type DistressDetector interface {
	Classify(ctx context.Context, audio []byte) ([]models.Prediction, error)
}

// VolunteerService определяет контракт бизнес-логики волонтеров
type VolunteerService interface {
	Register(ctx context.Context, profile models.VolunteerProfile) (*models.VolunteerProfile, error)
	SetActive(ctx context.Context, userID string, active bool) (*models.VolunteerProfile, error)
	Get(ctx context.Context, userID string) (*models.VolunteerProfile, error)
}

// LocationService определяет контракт обновления и чтения позиций
type LocationService interface {
	UpdateLocation(ctx context.Context, loc models.UserLocation) (*models.UserLocation, error)
	GetLocation(ctx context.Context, userID string) (*models.UserLocation, error)
}

// MatchingService определяет контракт поиска ближайших волонтеров
type MatchingService interface {
	QueryNearby(ctx context.Context, lat, lon, radiusKm float64, maxResults int) (*models.NearbyResult, error)
}

// DispatchService определяет контракт координатора инцидентов
type DispatchService interface {
	TriggerSOS(ctx context.Context, userID string, lat, lon float64, additionalInfo string) (*models.Emergency, int, error)
	PredictDistress(ctx context.Context, userID string, audio []byte) (*models.DistressResult, error)
	ResolveEmergency(ctx context.Context, id uuid.UUID) error
	GetHistory(ctx context.Context, userID string, days int) ([]*models.Emergency, error)
	GetAnalytics(ctx context.Context, userID string, days int) (*models.EmergencyAnalytics, error)
	AddContact(ctx context.Context, contact *models.EmergencyContact) error
	ListContacts(ctx context.Context, userID string) ([]*models.EmergencyContact, error)
}
