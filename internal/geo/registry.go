package geo

import (
	"fmt"
	"sync"
	"time"

	"github.com/Dharshan0025/neural-resq/internal/apperr"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

// VolunteerRegistry - авторитетное хранилище профилей волонтеров.
// Регистрация намеренно не идемпотентна: повторная попытка для того же
// user_id завершается ErrAlreadyRegistered, исходный профиль не меняется.
type VolunteerRegistry struct {
	mu       sync.RWMutex
	profiles map[string]*models.VolunteerProfile

	// onMembership вызывается после изменения членства (регистрация или
	// смена флага активности) уже вне блокировки реестра, иначе обратный
	// порядок захвата с блокировками LocationStore дает дедлок.
	// Обработчик обязан перечитывать актуальное состояние сам.
	onMembership func(userID string, active bool)
}

// NewVolunteerRegistry создает реестр. onMembership может быть nil.
func NewVolunteerRegistry(onMembership func(userID string, active bool)) *VolunteerRegistry {
	return &VolunteerRegistry{
		profiles:     make(map[string]*models.VolunteerProfile),
		onMembership: onMembership,
	}
}

// Register создает профиль волонтера
func (r *VolunteerRegistry) Register(profile models.VolunteerProfile) (models.VolunteerProfile, error) {
	r.mu.Lock()
	if _, exists := r.profiles[profile.UserID]; exists {
		r.mu.Unlock()
		return models.VolunteerProfile{}, fmt.Errorf("user %s: %w", profile.UserID, apperr.ErrAlreadyRegistered)
	}

	now := time.Now()
	if profile.RegisteredAt.IsZero() {
		profile.RegisteredAt = now
	}
	profile.UpdatedAt = now

	stored := profile
	r.profiles[profile.UserID] = &stored
	r.mu.Unlock()

	if r.onMembership != nil {
		r.onMembership(profile.UserID, profile.IsActive)
	}
	return stored, nil
}

// SetActive переключает флаг активности. Профиль не удаляется при
// деактивации, но волонтер немедленно исчезает из индекса близости.
func (r *VolunteerRegistry) SetActive(userID string, active bool) (models.VolunteerProfile, error) {
	r.mu.Lock()
	profile, exists := r.profiles[userID]
	if !exists {
		r.mu.Unlock()
		return models.VolunteerProfile{}, fmt.Errorf("user %s: %w", userID, apperr.ErrNotRegistered)
	}

	profile.IsActive = active
	profile.UpdatedAt = time.Now()
	updated := *profile
	r.mu.Unlock()

	if r.onMembership != nil {
		r.onMembership(userID, active)
	}
	return updated, nil
}

// Get возвращает копию профиля волонтера
func (r *VolunteerRegistry) Get(userID string) (models.VolunteerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.profiles[userID]
	if !exists {
		return models.VolunteerProfile{}, fmt.Errorf("profile for user %s: %w", userID, apperr.ErrNotFound)
	}
	return *profile, nil
}

// IsActive сообщает, активен ли зарегистрированный волонтер
func (r *VolunteerRegistry) IsActive(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, exists := r.profiles[userID]
	return exists && profile.IsActive
}
