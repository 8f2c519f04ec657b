package models

import (
	"time"
)

// UserLocation - последняя известная позиция пользователя.
// Запись перезаписывается только обновлением с более свежим ObservedAt.
type UserLocation struct {
	UserID     string    `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	ObservedAt time.Time `json:"observed_at"`
}
