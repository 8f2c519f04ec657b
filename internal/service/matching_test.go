package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dharshan0025/neural-resq/internal/apperr"
	"github.com/Dharshan0025/neural-resq/internal/config"
	"github.com/Dharshan0025/neural-resq/internal/geo"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

// newTestMatchingService — вспомогательная функция для создания сервиса поиска
func newTestMatchingService(t *testing.T, maxNearby int) (*matchingService, *geo.Core) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultRadiusKm:  5.0,
		MaxNearbyResults: maxNearby,
	}

	core := geo.NewCore()
	service := NewMatchingService(core, cfg, logger)
	return service.(*matchingService), core
}

func addActiveVolunteer(t *testing.T, core *geo.Core, userID string, lat, lon float64) {
	t.Helper()
	_, err := core.Registry.Register(models.VolunteerProfile{UserID: userID, IsActive: true})
	require.NoError(t, err)
	_, err = core.Store.Update(models.UserLocation{
		UserID: userID, Latitude: lat, Longitude: lon, ObservedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestQueryNearby_Success(t *testing.T) {
	// Подготовка
	service, core := newTestMatchingService(t, 50)
	addActiveVolunteer(t, core, "vol-1", 55.751, 37.611)

	// Действие
	result, err := service.QueryNearby(context.Background(), 55.750, 37.610, 5, 10)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "vol-1", result.Volunteers[0].UserID)
}

func TestQueryNearby_ZeroMaxResults_UsesConfiguredCap(t *testing.T) {
	// Подготовка: волонтеров больше, чем настроенный потолок
	service, core := newTestMatchingService(t, 2)
	for i := 0; i < 5; i++ {
		addActiveVolunteer(t, core, fmt.Sprintf("vol-%d", i), 55.751+float64(i)*0.001, 37.611)
	}

	// Действие: клиент не ограничил выдачу
	result, err := service.QueryNearby(context.Background(), 55.750, 37.610, 20, 0)

	// Проверки: ответ все равно ограничен
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestQueryNearby_MaxResultsAboveCap_Clamped(t *testing.T) {
	service, core := newTestMatchingService(t, 2)
	for i := 0; i < 5; i++ {
		addActiveVolunteer(t, core, fmt.Sprintf("vol-%d", i), 55.751+float64(i)*0.001, 37.611)
	}

	result, err := service.QueryNearby(context.Background(), 55.750, 37.610, 20, 100)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestQueryNearby_InvalidQuery(t *testing.T) {
	service, _ := newTestMatchingService(t, 50)

	_, err := service.QueryNearby(context.Background(), 100, 0, 5, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidQuery)

	_, err = service.QueryNearby(context.Background(), 0, 0, -1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidQuery)
}
