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
	"go.uber.org/mock/gomock"

	"github.com/Dharshan0025/neural-resq/internal/geo"
	"github.com/Dharshan0025/neural-resq/internal/models"
	"github.com/Dharshan0025/neural-resq/internal/service/mocks"
)

func TestRestoreCore_Success(t *testing.T) {
	// Подготовка: в зеркале позиция и активный профиль
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockVolunteerRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	core := geo.NewCore()
	ctx := context.Background()

	locations := []*models.UserLocation{
		{UserID: "vol-1", Latitude: 55.751, Longitude: 37.611, ObservedAt: time.Now()},
	}
	profiles := []*models.VolunteerProfile{
		{UserID: "vol-1", IsActive: true, RegisteredAt: time.Now()},
		{UserID: "vol-2", IsActive: false, RegisteredAt: time.Now()},
	}

	// Ожидания: сначала позиции, затем профили
	repoMock.EXPECT().LoadLocations(ctx).Return(locations, nil).Times(1)
	repoMock.EXPECT().LoadProfiles(ctx).Return(profiles, nil).Times(1)

	// Действие
	err := RestoreCore(ctx, core, repoMock, logger)

	// Проверки: индекс наполнен через колбэк членства
	require.NoError(t, err)
	result, err := core.Engine.Query(55.750, 37.610, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "vol-1", result.Volunteers[0].UserID)

	// Неактивный профиль восстановлен, но не индексирован
	profile, err := core.Registry.Get("vol-2")
	require.NoError(t, err)
	assert.False(t, profile.IsActive)
}

func TestRestoreCore_LoadLocationsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockVolunteerRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	ctx := context.Background()
	repoMock.EXPECT().LoadLocations(ctx).Return(nil, fmt.Errorf("бд недоступна")).Times(1)

	err := RestoreCore(ctx, geo.NewCore(), repoMock, logger)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not load locations")
}

func TestRestoreCore_SkipsInvalidPersistedLocation(t *testing.T) {
	// Некорректная запись в зеркале не срывает прогрев
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockVolunteerRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	core := geo.NewCore()
	ctx := context.Background()

	locations := []*models.UserLocation{
		{UserID: "bad", Latitude: 95, Longitude: 0, ObservedAt: time.Now()},
		{UserID: "good", Latitude: 10, Longitude: 10, ObservedAt: time.Now()},
	}
	repoMock.EXPECT().LoadLocations(ctx).Return(locations, nil).Times(1)
	repoMock.EXPECT().LoadProfiles(ctx).Return(nil, nil).Times(1)

	err := RestoreCore(ctx, core, repoMock, logger)

	require.NoError(t, err)
	_, err = core.Store.Get("good")
	assert.NoError(t, err)
	_, err = core.Store.Get("bad")
	assert.Error(t, err)
}
