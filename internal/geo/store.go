package geo

import (
	"fmt"
	"sync"

	"github.com/Dharshan0025/neural-resq/internal/apperr"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

// LocationStore - авторитетное хранилище последних известных позиций.
// Мутации сериализуются по ключу пользователя: у каждого user_id свой слот
// со своим мьютексом, обновления разных пользователей не конкурируют между
// собой. Конфликты разрешаются по правилу last-write-wins по ObservedAt.
type LocationStore struct {
	slots sync.Map // user_id -> *locationSlot

	// onChange вызывается синхронно после применения обновления,
	// до возврата из Update. Под слотовым мьютексом, чтобы порядок
	// уведомлений по одному пользователю совпадал с порядком записей.
	onChange func(loc models.UserLocation)
}

type locationSlot struct {
	mu  sync.Mutex
	loc models.UserLocation
	set bool
}

// NewLocationStore создает хранилище. onChange может быть nil.
func NewLocationStore(onChange func(loc models.UserLocation)) *LocationStore {
	return &LocationStore{onChange: onChange}
}

// Update применяет обновление позиции. Координаты вне диапазона отклоняются
// с ErrInvalidCoordinate без изменения состояния. Обновление с ObservedAt
// не новее сохраненного - no-op: возвращается текущая запись без изменений,
// что делает операцию идемпотентной при доставке вне порядка.
func (s *LocationStore) Update(loc models.UserLocation) (models.UserLocation, error) {
	if !ValidCoordinate(loc.Latitude, loc.Longitude) {
		return models.UserLocation{}, fmt.Errorf("lat=%f lon=%f: %w", loc.Latitude, loc.Longitude, apperr.ErrInvalidCoordinate)
	}

	v, _ := s.slots.LoadOrStore(loc.UserID, &locationSlot{})
	slot := v.(*locationSlot)

	slot.mu.Lock()
	defer slot.mu.Unlock()

	if slot.set && !slot.loc.ObservedAt.Before(loc.ObservedAt) {
		// Устаревшее обновление: сохраненная запись новее или такая же
		return slot.loc, nil
	}

	slot.loc = loc
	slot.set = true

	if s.onChange != nil {
		s.onChange(loc)
	}
	return loc, nil
}

// Get возвращает последнюю известную позицию пользователя
func (s *LocationStore) Get(userID string) (models.UserLocation, error) {
	v, ok := s.slots.Load(userID)
	if !ok {
		return models.UserLocation{}, fmt.Errorf("location for user %s: %w", userID, apperr.ErrNotFound)
	}
	slot := v.(*locationSlot)

	slot.mu.Lock()
	defer slot.mu.Unlock()
	if !slot.set {
		return models.UserLocation{}, fmt.Errorf("location for user %s: %w", userID, apperr.ErrNotFound)
	}
	return slot.loc, nil
}
