package models

import (
	"time"
)

// VolunteerProfile - профиль волонтера. Один профиль на пользователя,
// деактивация снимает флаг IsActive, но запись не удаляется.
type VolunteerProfile struct {
	UserID         string              `json:"user_id"`
	IsActive       bool                `json:"is_active"`
	Qualifications []string            `json:"qualifications"`
	Availability   map[string][]string `json:"availability"`
	RegisteredAt   time.Time           `json:"registered_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// NearbyVolunteer - элемент результата поиска ближайших волонтеров
type NearbyVolunteer struct {
	UserID         string    `json:"user_id"`
	DistanceKm     float64   `json:"distance_km"`
	Qualifications []string  `json:"qualifications"`
	LastUpdated    time.Time `json:"last_updated"`
}

// NearbyResult - результат поиска: волонтеры по возрастанию дистанции,
// при равной дистанции по возрастанию user_id
type NearbyResult struct {
	Count      int               `json:"count"`
	Volunteers []NearbyVolunteer `json:"volunteers"`
	CenterLat  float64           `json:"center_lat"`
	CenterLng  float64           `json:"center_lng"`
	RadiusKm   float64           `json:"radius_km"`
}
