package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterVolunteerRequest DTO для регистрации волонтера
// @Description DTO для регистрации волонтера
type RegisterVolunteerRequest struct {
	UserID         string              `json:"user_id" validate:"required"`
	IsActive       *bool               `json:"is_active"`
	Qualifications []string            `json:"qualifications"`
	Availability   map[string][]string `json:"availability"`
}

// RegisterVolunteerResponse DTO для ответа на регистрацию
// @Description DTO для ответа на регистрацию
type RegisterVolunteerResponse struct {
	VolunteerID string `json:"volunteer_id"`
}

// SetActiveRequest DTO для переключения активности волонтера
// @Description DTO для переключения активности волонтера
type SetActiveRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

// VolunteerResponse DTO для ответа с профилем волонтера
// @Description DTO для ответа с профилем волонтера
type VolunteerResponse struct {
	UserID         string              `json:"user_id"`
	IsActive       bool                `json:"is_active"`
	Qualifications []string            `json:"qualifications"`
	Availability   map[string][]string `json:"availability"`
	RegisteredAt   time.Time           `json:"registered_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// UpdateLocationRequest DTO для пинга геолокации
// @Description DTO для пинга геолокации
type UpdateLocationRequest struct {
	UserID     string    `json:"user_id" validate:"required"`
	Latitude   float64   `json:"latitude" validate:"latitude"`
	Longitude  float64   `json:"longitude" validate:"longitude"`
	Accuracy   float64   `json:"accuracy" validate:"gte=0"`
	ObservedAt time.Time `json:"observed_at" validate:"required"`
}

// LocationResponse DTO для ответа с позицией
// @Description DTO для ответа с позицией
type LocationResponse struct {
	UserID     string    `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	ObservedAt time.Time `json:"observed_at"`
}

// NearbyVolunteerResponse DTO для элемента поиска ближайших
// @Description DTO для элемента поиска ближайших
type NearbyVolunteerResponse struct {
	UserID         string    `json:"user_id"`
	DistanceKm     float64   `json:"distance_km"`
	Qualifications []string  `json:"qualifications"`
	LastUpdated    time.Time `json:"last_updated"`
}

// NearbyResponse DTO для ответа поиска ближайших волонтеров
// @Description DTO для ответа поиска ближайших волонтеров
type NearbyResponse struct {
	Count      int                       `json:"count"`
	Volunteers []NearbyVolunteerResponse `json:"volunteers"`
	CenterLat  float64                   `json:"center_lat"`
	CenterLng  float64                   `json:"center_lng"`
	RadiusKm   float64                   `json:"radius_km"`
}

// TriggerSOSRequest DTO для ручного сигнала SOS
// @Description DTO для ручного сигнала SOS
type TriggerSOSRequest struct {
	UserID         string  `json:"user_id" validate:"required"`
	Latitude       float64 `json:"latitude" validate:"latitude"`
	Longitude      float64 `json:"longitude" validate:"longitude"`
	AdditionalInfo string  `json:"additional_info,omitempty"`
}

// SOSResponse DTO для ответа на сигнал SOS
// @Description DTO для ответа на сигнал SOS
type SOSResponse struct {
	EmergencyID       uuid.UUID `json:"emergency_id"`
	NotificationsSent int       `json:"notifications_sent"`
}

// DistressResponse DTO для результата детекции дистресса
// @Description DTO для результата детекции дистресса
type DistressResponse struct {
	IsDistress  bool                 `json:"is_distress"`
	Confidence  float64              `json:"confidence"`
	Details     []PredictionResponse `json:"details"`
	EmergencyID uuid.UUID            `json:"emergency_id"`
}

// PredictionResponse DTO для метки классификатора
// @Description DTO для метки классификатора
type PredictionResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// AddContactRequest DTO для добавления экстренного контакта
// @Description DTO для добавления экстренного контакта
type AddContactRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Phone    string `json:"phone" validate:"required,min=5,max=32"`
	Relation string `json:"relation,omitempty"`
}

// ContactResponse DTO для ответа с экстренным контактом
// @Description DTO для ответа с экстренным контактом
type ContactResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EmergencyResponse DTO для записи об инциденте
// @Description DTO для записи об инциденте
type EmergencyResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         string     `json:"user_id"`
	DetectionType  string     `json:"detection_type"`
	IsConfirmed    bool       `json:"is_confirmed"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	AdditionalInfo string     `json:"additional_info,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

// AnalyticsResponse DTO для статистики инцидентов
// @Description DTO для статистики инцидентов
type AnalyticsResponse struct {
	TotalEmergencies     int            `json:"total_emergencies"`
	ConfirmedEmergencies int            `json:"confirmed_emergencies"`
	ByType               map[string]int `json:"by_type"`
	TimePeriodDays       int            `json:"time_period_days"`
}
