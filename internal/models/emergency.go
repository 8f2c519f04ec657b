package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы обнаружения инцидента
const (
	DetectionManual = "manual"
	DetectionAudio  = "audio"
)

// Emergency - запись об инциденте. Переход open -> resolved терминальный:
// ResolvedAt выставляется ровно один раз.
type Emergency struct {
	ID             uuid.UUID      `json:"id"`
	UserID         string         `json:"user_id"`
	DetectionType  string         `json:"detection_type"`
	DetectionData  map[string]any `json:"detection_data,omitempty"`
	IsConfirmed    bool           `json:"is_confirmed"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	AdditionalInfo string         `json:"additional_info,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
}

// EmergencyContact - экстренный контакт пользователя
type EmergencyContact struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Relation  string    `json:"relation,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EmergencyAnalytics - агрегированная статистика инцидентов пользователя
type EmergencyAnalytics struct {
	TotalEmergencies     int            `json:"total_emergencies"`
	ConfirmedEmergencies int            `json:"confirmed_emergencies"`
	ByType               map[string]int `json:"by_type"`
	TimePeriodDays       int            `json:"time_period_days"`
}

// Prediction - метка и уверенность классификатора дистресса
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// DistressResult - итог обработки аудио детектором
type DistressResult struct {
	IsDistress  bool         `json:"is_distress"`
	Confidence  float64      `json:"confidence"`
	Details     []Prediction `json:"details"`
	EmergencyID uuid.UUID    `json:"emergency_id"`
}
