package geo

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Dharshan0025/neural-resq/internal/apperr"
	"github.com/Dharshan0025/neural-resq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCore собирает ядро и регистрирует волонтера с позицией
func newTestCore(t *testing.T) *Core {
	t.Helper()
	return NewCore()
}

func registerVolunteer(t *testing.T, core *Core, userID string, active bool, lat, lon float64, quals ...string) {
	t.Helper()
	_, err := core.Registry.Register(models.VolunteerProfile{
		UserID:         userID,
		IsActive:       active,
		Qualifications: quals,
	})
	require.NoError(t, err)
	_, err = core.Store.Update(models.UserLocation{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lon,
		ObservedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestMatchingEngine_Query_ActiveOnly(t *testing.T) {
	// Подготовка: A активен с квалификацией cpr, B неактивен рядом
	core := newTestCore(t)
	registerVolunteer(t, core, "vol-a", true, 55.751, 37.611, "cpr")
	registerVolunteer(t, core, "vol-b", false, 55.752, 37.612, "first-aid")

	// Действие
	result, err := core.Engine.Query(55.750, 37.610, 5, 0)

	// Проверки: B не попадает ни в кандидаты, ни в результат
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "vol-a", result.Volunteers[0].UserID)
	assert.Equal(t, []string{"cpr"}, result.Volunteers[0].Qualifications)
	assert.Greater(t, result.Volunteers[0].DistanceKm, 0.0)
	assert.False(t, result.Volunteers[0].LastUpdated.IsZero())
}

func TestMatchingEngine_Query_AcrossAntimeridian(t *testing.T) {
	// Волонтер чуть западнее антимеридиана находится запросом
	// с восточной стороны: реальная дистанция ~11 км
	core := newTestCore(t)
	registerVolunteer(t, core, "vol-west", true, 0, -179.95)

	result, err := core.Engine.Query(0, 179.95, 50, 0)

	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "vol-west", result.Volunteers[0].UserID)
	assert.InDelta(t, 11.1, result.Volunteers[0].DistanceKm, 0.5)
}

func TestMatchingEngine_Query_SortedByDistance(t *testing.T) {
	core := newTestCore(t)
	registerVolunteer(t, core, "far", true, 55.80, 37.70)
	registerVolunteer(t, core, "near", true, 55.751, 37.611)
	registerVolunteer(t, core, "mid", true, 55.77, 37.65)

	result, err := core.Engine.Query(55.750, 37.610, 20, 0)

	require.NoError(t, err)
	require.Equal(t, 3, result.Count)
	assert.Equal(t, "near", result.Volunteers[0].UserID)
	assert.Equal(t, "mid", result.Volunteers[1].UserID)
	assert.Equal(t, "far", result.Volunteers[2].UserID)
	assert.LessOrEqual(t, result.Volunteers[0].DistanceKm, result.Volunteers[1].DistanceKm)
	assert.LessOrEqual(t, result.Volunteers[1].DistanceKm, result.Volunteers[2].DistanceKm)
}

func TestMatchingEngine_Query_TieBreakByUserID(t *testing.T) {
	// Две записи на одной точке: порядок детерминирован по user_id
	core := newTestCore(t)
	registerVolunteer(t, core, "vol-b", true, 55.751, 37.611)
	registerVolunteer(t, core, "vol-a", true, 55.751, 37.611)

	result, err := core.Engine.Query(55.750, 37.610, 5, 0)

	require.NoError(t, err)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "vol-a", result.Volunteers[0].UserID)
	assert.Equal(t, "vol-b", result.Volunteers[1].UserID)
}

func TestMatchingEngine_Query_MaxResults(t *testing.T) {
	core := newTestCore(t)
	for i := 0; i < 10; i++ {
		registerVolunteer(t, core, fmt.Sprintf("vol-%02d", i), true, 55.751+float64(i)*0.001, 37.611)
	}

	result, err := core.Engine.Query(55.750, 37.610, 20, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Len(t, result.Volunteers, 3)
	// Усечение после сортировки: остались ближайшие
	assert.Equal(t, "vol-00", result.Volunteers[0].UserID)
}

func TestMatchingEngine_Query_RadiusBoundary(t *testing.T) {
	core := newTestCore(t)
	registerVolunteer(t, core, "inside", true, 55.751, 37.611)
	// ~111 км севернее, за пределами радиуса 50 км
	registerVolunteer(t, core, "outside", true, 56.75, 37.611)

	result, err := core.Engine.Query(55.750, 37.610, 50, 0)

	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "inside", result.Volunteers[0].UserID)
}

func TestMatchingEngine_Query_EmptyResult(t *testing.T) {
	core := newTestCore(t)

	result, err := core.Engine.Query(0, 0, 10, 0)

	// Пустой результат не ошибка
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Volunteers)
	assert.Equal(t, 10.0, result.RadiusKm)
}

func TestMatchingEngine_Query_InvalidQuery(t *testing.T) {
	core := newTestCore(t)

	_, err := core.Engine.Query(91, 0, 10, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidQuery))

	_, err = core.Engine.Query(0, 0, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidQuery))

	_, err = core.Engine.Query(0, 0, -5, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidQuery))
}

func TestCore_Deactivation_RemovesFromIndex(t *testing.T) {
	// Подготовка
	core := newTestCore(t)
	registerVolunteer(t, core, "vol-a", true, 55.751, 37.611)

	result, err := core.Engine.Query(55.750, 37.610, 5, 0)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)

	// Действие: деактивация
	_, err = core.Registry.SetActive("vol-a", false)
	require.NoError(t, err)

	// Проверки: волонтер немедленно исчезает из выдачи
	result, err = core.Engine.Query(55.750, 37.610, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
}

func TestCore_Reactivation_RestoresLastKnownPosition(t *testing.T) {
	core := newTestCore(t)
	registerVolunteer(t, core, "vol-a", true, 55.751, 37.611)

	_, err := core.Registry.SetActive("vol-a", false)
	require.NoError(t, err)
	_, err = core.Registry.SetActive("vol-a", true)
	require.NoError(t, err)

	result, err := core.Engine.Query(55.750, 37.610, 5, 0)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "vol-a", result.Volunteers[0].UserID)
}

func TestCore_InactiveVolunteerPing_NotIndexed(t *testing.T) {
	// Пинги неактивного волонтера сохраняются, но в индекс не попадают
	core := newTestCore(t)
	registerVolunteer(t, core, "vol-a", false, 55.751, 37.611)

	result, err := core.Engine.Query(55.750, 37.610, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)

	// Позиция при этом известна хранилищу
	loc, err := core.Store.Get("vol-a")
	require.NoError(t, err)
	assert.Equal(t, 55.751, loc.Latitude)
}

func TestCore_ActivationBeforeFirstPing_IndexedOnPing(t *testing.T) {
	// Регистрация до первого пинга: запись появляется в индексе
	// вместе с первым обновлением позиции
	core := newTestCore(t)
	_, err := core.Registry.Register(models.VolunteerProfile{UserID: "vol-a", IsActive: true})
	require.NoError(t, err)

	result, err := core.Engine.Query(55.750, 37.610, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)

	_, err = core.Store.Update(models.UserLocation{
		UserID:     "vol-a",
		Latitude:   55.751,
		Longitude:  37.611,
		ObservedAt: time.Now(),
	})
	require.NoError(t, err)

	result, err = core.Engine.Query(55.750, 37.610, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestCore_PositionMove_ReflectedInQueries(t *testing.T) {
	core := newTestCore(t)
	registerVolunteer(t, core, "vol-a", true, 55.751, 37.611)

	_, err := core.Store.Update(models.UserLocation{
		UserID:     "vol-a",
		Latitude:   59.93,
		Longitude:  30.33,
		ObservedAt: time.Date(2026, 1, 10, 13, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	result, err := core.Engine.Query(55.750, 37.610, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)

	result, err = core.Engine.Query(59.93, 30.33, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestCore_ConcurrentPingAndDeactivate_NoGhostEntry(t *testing.T) {
	// Гонка пинга и деактивации не должна оставлять в индексе
	// запись-призрак деактивированного волонтера
	for i := 0; i < 50; i++ {
		core := newTestCore(t)
		registerVolunteer(t, core, "vol-1", true, 10.5, 20.5)

		base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 1; j <= 20; j++ {
				_, err := core.Store.Update(models.UserLocation{
					UserID:     "vol-1",
					Latitude:   10.5,
					Longitude:  20.5,
					ObservedAt: base.Add(time.Duration(j) * time.Second),
				})
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			_, err := core.Registry.SetActive("vol-1", false)
			assert.NoError(t, err)
		}()
		wg.Wait()

		assert.Equal(t, 0, core.Index.Snapshot().Size())
	}
}
