package geo

import (
	"github.com/Dharshan0025/neural-resq/internal/models"
)

// Core связывает хранилища, индекс и движок поиска в единый агрегат
// с синхронным сопровождением индекса: изменение позиции или членства
// отражается в индексе до возврата из мутирующего вызова.
type Core struct {
	Store    *LocationStore
	Registry *VolunteerRegistry
	Index    *ProximityIndex
	Engine   *MatchingEngine
}

// NewCore создает ядро и замыкает побочные эффекты:
//   - обновление позиции активного волонтера -> upsert в индекс;
//   - активация при известной позиции -> upsert, деактивация -> remove.
func NewCore() *Core {
	index := NewProximityIndex()

	var store *LocationStore
	var registry *VolunteerRegistry

	store = NewLocationStore(func(loc models.UserLocation) {
		if !registry.IsActive(loc.UserID) {
			return
		}
		index.Upsert(Entry{
			UserID:    loc.UserID,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		})
		// Перепроверка после вставки: конкурирующая деактивация могла
		// выполнить Remove между чтением флага и Upsert, и без нее
		// запись-призрак жила бы до следующего пинга
		if !registry.IsActive(loc.UserID) {
			index.Remove(loc.UserID)
		}
	})

	registry = NewVolunteerRegistry(func(userID string, _ bool) {
		// Флаг из аргумента не используется: колбэк выполняется вне
		// блокировки реестра, поэтому состояние перечитывается, и
		// конкурирующие переключения сходятся к последнему значению
		if !registry.IsActive(userID) {
			index.Remove(userID)
			return
		}
		loc, err := store.Get(userID)
		if err != nil {
			// Позиция еще неизвестна: запись появится в индексе
			// с первым обновлением локации
			return
		}
		index.Upsert(Entry{
			UserID:    userID,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		})
		// Симметричная перепроверка: деактивация, проскочившая между
		// чтением флага и Upsert, не оставляет запись в индексе
		if !registry.IsActive(userID) {
			index.Remove(userID)
		}
	})

	return &Core{
		Store:    store,
		Registry: registry,
		Index:    index,
		Engine:   NewMatchingEngine(index, registry, store),
	}
}
