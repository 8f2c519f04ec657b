package geo

import (
	"fmt"
	"sort"

	"github.com/Dharshan0025/neural-resq/internal/apperr"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

// MatchingEngine выполняет поиск ближайших волонтеров по снапшоту индекса.
// Запросы не блокируют обновления позиций: единственная точка
// синхронизации - получение снапшота.
type MatchingEngine struct {
	index    *ProximityIndex
	registry *VolunteerRegistry
	store    *LocationStore
}

// NewMatchingEngine создает движок поверх индекса и двух хранилищ
func NewMatchingEngine(index *ProximityIndex, registry *VolunteerRegistry, store *LocationStore) *MatchingEngine {
	return &MatchingEngine{
		index:    index,
		registry: registry,
		store:    store,
	}
}

// Query ищет активных волонтеров в радиусе radiusKm от центра.
// Результат отсортирован по возрастанию дистанции, при равенстве -
// по возрастанию user_id; maxResults > 0 ограничивает размер.
// Пустой результат не ошибка.
func (e *MatchingEngine) Query(centerLat, centerLon, radiusKm float64, maxResults int) (models.NearbyResult, error) {
	if !ValidCoordinate(centerLat, centerLon) {
		return models.NearbyResult{}, fmt.Errorf("center lat=%f lon=%f: %w", centerLat, centerLon, apperr.ErrInvalidQuery)
	}
	if radiusKm <= 0 {
		return models.NearbyResult{}, fmt.Errorf("radius_km=%f: %w", radiusKm, apperr.ErrInvalidQuery)
	}

	snap := e.index.Snapshot()

	type candidate struct {
		entry      Entry
		distanceKm float64
	}

	candidates := make([]candidate, 0)
	for _, entry := range snap.Candidates(centerLat, centerLon, radiusKm) {
		d := Haversine(centerLat, centerLon, entry.Latitude, entry.Longitude)
		if d <= radiusKm {
			candidates = append(candidates, candidate{entry: entry, distanceKm: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distanceKm != candidates[j].distanceKm {
			return candidates[i].distanceKm < candidates[j].distanceKm
		}
		return candidates[i].entry.UserID < candidates[j].entry.UserID
	})

	if maxResults > 0 && len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	volunteers := make([]models.NearbyVolunteer, 0, len(candidates))
	for _, c := range candidates {
		// Обогащение профилем обязательно: квалификации не хранятся
		// в индексе. Запись, чей профиль успел исчезнуть или стать
		// неактивным между снапшотом и джойном, молча отбрасывается -
		// согласованность двух хранилищ best-effort, не транзакционная.
		profile, err := e.registry.Get(c.entry.UserID)
		if err != nil || !profile.IsActive {
			continue
		}
		loc, err := e.store.Get(c.entry.UserID)
		if err != nil {
			continue
		}
		volunteers = append(volunteers, models.NearbyVolunteer{
			UserID:         c.entry.UserID,
			DistanceKm:     c.distanceKm,
			Qualifications: profile.Qualifications,
			LastUpdated:    loc.ObservedAt,
		})
	}

	return models.NearbyResult{
		Count:      len(volunteers),
		Volunteers: volunteers,
		CenterLat:  centerLat,
		CenterLng:  centerLon,
		RadiusKm:   radiusKm,
	}, nil
}
