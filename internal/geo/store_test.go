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

func TestLocationStore_UpdateAndGet(t *testing.T) {
	// Подготовка
	store := NewLocationStore(nil)
	loc := models.UserLocation{
		UserID:     "user-1",
		Latitude:   55.75,
		Longitude:  37.61,
		Accuracy:   10,
		ObservedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}

	// Действие
	applied, err := store.Update(loc)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, loc, applied)

	got, err := store.Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, loc, got)
}

func TestLocationStore_Get_NotFound(t *testing.T) {
	store := NewLocationStore(nil)

	_, err := store.Get("unknown")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestLocationStore_Update_InvalidCoordinates(t *testing.T) {
	store := NewLocationStore(nil)

	cases := []struct {
		lat float64
		lon float64
	}{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
	}
	for _, c := range cases {
		_, err := store.Update(models.UserLocation{
			UserID:     "user-1",
			Latitude:   c.lat,
			Longitude:  c.lon,
			ObservedAt: time.Now(),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrInvalidCoordinate))
	}

	// Состояние не изменилось
	_, err := store.Get("user-1")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestLocationStore_Update_StaleObservedAt_NoOp(t *testing.T) {
	// Подготовка
	store := NewLocationStore(nil)
	t5 := time.Date(2026, 1, 10, 12, 0, 5, 0, time.UTC)
	t3 := time.Date(2026, 1, 10, 12, 0, 3, 0, time.UTC)

	fresh := models.UserLocation{UserID: "user-1", Latitude: 10, Longitude: 10, ObservedAt: t5}
	stale := models.UserLocation{UserID: "user-1", Latitude: 20, Longitude: 20, ObservedAt: t3}

	_, err := store.Update(fresh)
	require.NoError(t, err)

	// Действие: обновление с более старым ObservedAt приходит позже
	applied, err := store.Update(stale)

	// Проверки: устаревшая запись отброшена, возвращена текущая
	require.NoError(t, err)
	assert.Equal(t, fresh, applied)

	got, err := store.Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestLocationStore_Update_EqualObservedAt_NoOp(t *testing.T) {
	store := NewLocationStore(nil)
	ts := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	first := models.UserLocation{UserID: "user-1", Latitude: 10, Longitude: 10, ObservedAt: ts}
	second := models.UserLocation{UserID: "user-1", Latitude: 20, Longitude: 20, ObservedAt: ts}

	_, err := store.Update(first)
	require.NoError(t, err)

	applied, err := store.Update(second)
	require.NoError(t, err)
	assert.Equal(t, first, applied)
}

func TestLocationStore_OnChange_NotCalledForStale(t *testing.T) {
	// Подготовка
	var calls []models.UserLocation
	store := NewLocationStore(func(loc models.UserLocation) {
		calls = append(calls, loc)
	})
	t5 := time.Date(2026, 1, 10, 12, 0, 5, 0, time.UTC)
	t3 := time.Date(2026, 1, 10, 12, 0, 3, 0, time.UTC)

	// Действие
	_, err := store.Update(models.UserLocation{UserID: "user-1", Latitude: 1, Longitude: 1, ObservedAt: t5})
	require.NoError(t, err)
	_, err = store.Update(models.UserLocation{UserID: "user-1", Latitude: 2, Longitude: 2, ObservedAt: t3})
	require.NoError(t, err)

	// Проверки: колбэк вызван только для примененного обновления
	require.Len(t, calls, 1)
	assert.Equal(t, 1.0, calls[0].Latitude)
}

func TestLocationStore_ConcurrentUpdates_SameUser(t *testing.T) {
	// Подготовка: N конкурентных обновлений одного пользователя
	// с монотонно растущими метками; побеждает самая свежая
	store := NewLocationStore(nil)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Update(models.UserLocation{
				UserID:     "user-1",
				Latitude:   float64(i%90) + 0.5,
				Longitude:  float64(i % 180),
				ObservedAt: base.Add(time.Duration(i) * time.Second),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Проверки
	got, err := store.Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, base.Add((n-1)*time.Second), got.ObservedAt)
}

func TestLocationStore_ConcurrentUpdates_DifferentUsers(t *testing.T) {
	store := NewLocationStore(nil)
	ts := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i)
			_, err := store.Update(models.UserLocation{
				UserID:     userID,
				Latitude:   float64(i % 90),
				Longitude:  float64(i % 180),
				ObservedAt: ts,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		_, err := store.Get(fmt.Sprintf("user-%d", i))
		assert.NoError(t, err)
	}
}
