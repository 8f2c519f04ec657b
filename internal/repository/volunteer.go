package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Dharshan0025/neural-resq/internal/models"
)

const geoMirrorKey = "active_volunteers"

// SaveProfile создает или обновляет строку профиля волонтера
func (r *Repository) SaveProfile(ctx context.Context, profile *models.VolunteerProfile) error {
	qualifications, err := json.Marshal(profile.Qualifications)
	if err != nil {
		return fmt.Errorf("failed to marshal qualifications: %w", err)
	}
	availability, err := json.Marshal(profile.Availability)
	if err != nil {
		return fmt.Errorf("failed to marshal availability: %w", err)
	}

	query := `
		INSERT INTO volunteers (user_id, is_active, qualifications, availability, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			is_active = EXCLUDED.is_active,
			qualifications = EXCLUDED.qualifications,
			availability = EXCLUDED.availability,
			updated_at = EXCLUDED.updated_at;
	`
	_, err = r.db.Exec(ctx, query,
		profile.UserID,
		profile.IsActive,
		qualifications,
		availability,
		profile.RegisteredAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save volunteer profile: %w", err)
	}
	return nil
}

// SaveLocation создает или обновляет строку последней известной позиции.
// Условие на observed_at повторяет last-write-wins ядра: устаревшая строка
// не перетирает более свежую.
func (r *Repository) SaveLocation(ctx context.Context, loc *models.UserLocation) error {
	query := `
		INSERT INTO user_locations (user_id, latitude, longitude, accuracy, observed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			accuracy = EXCLUDED.accuracy,
			observed_at = EXCLUDED.observed_at
		WHERE user_locations.observed_at < EXCLUDED.observed_at;
	`
	_, err := r.db.Exec(ctx, query,
		loc.UserID,
		loc.Latitude,
		loc.Longitude,
		loc.Accuracy,
		loc.ObservedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// LoadProfiles возвращает все профили волонтеров для прогрева ядра
func (r *Repository) LoadProfiles(ctx context.Context) ([]*models.VolunteerProfile, error) {
	query := `
		SELECT user_id, is_active, qualifications, availability, registered_at, updated_at
		FROM volunteers;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load volunteer profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*models.VolunteerProfile, 0)
	for rows.Next() {
		profile := &models.VolunteerProfile{}
		var qualifications, availability []byte
		err := rows.Scan(
			&profile.UserID,
			&profile.IsActive,
			&qualifications,
			&availability,
			&profile.RegisteredAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		if err := json.Unmarshal(qualifications, &profile.Qualifications); err != nil {
			return nil, fmt.Errorf("failed to unmarshal qualifications: %w", err)
		}
		if err := json.Unmarshal(availability, &profile.Availability); err != nil {
			return nil, fmt.Errorf("failed to unmarshal availability: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error profiles iteration: %w", err)
	}
	return profiles, nil
}

// LoadLocations возвращает все сохраненные позиции для прогрева ядра
func (r *Repository) LoadLocations(ctx context.Context) ([]*models.UserLocation, error) {
	query := `
		SELECT user_id, latitude, longitude, accuracy, observed_at
		FROM user_locations;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.UserLocation, 0)
	for rows.Next() {
		loc := &models.UserLocation{}
		err := rows.Scan(
			&loc.UserID,
			&loc.Latitude,
			&loc.Longitude,
			&loc.Accuracy,
			&loc.ObservedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error locations iteration: %w", err)
	}
	return locations, nil
}

// AddGeo обновляет позицию волонтера в GEO-реплике Redis
func (r *Repository) AddGeo(ctx context.Context, userID string, lat, lon float64) error {
	err := r.redisClient.GeoAdd(ctx, geoMirrorKey, &redis.GeoLocation{
		Name:      userID,
		Latitude:  lat,
		Longitude: lon,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to update geo mirror: %w", err)
	}
	return nil
}

// RemoveGeo удаляет волонтера из GEO-реплики Redis
func (r *Repository) RemoveGeo(ctx context.Context, userID string) error {
	if err := r.redisClient.ZRem(ctx, geoMirrorKey, userID).Err(); err != nil {
		return fmt.Errorf("failed to remove from geo mirror: %w", err)
	}
	return nil
}
