package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/Dharshan0025/neural-resq/internal/apperr"
	"github.com/Dharshan0025/neural-resq/internal/models"
)

// SaveEmergency создает запись об инциденте
func (r *Repository) SaveEmergency(ctx context.Context, emergency *models.Emergency) error {
	var detectionData []byte
	if emergency.DetectionData != nil {
		var err error
		detectionData, err = json.Marshal(emergency.DetectionData)
		if err != nil {
			return fmt.Errorf("failed to marshal detection data: %w", err)
		}
	}

	query := `
		INSERT INTO emergencies (id, user_id, detection_type, detection_data, is_confirmed, latitude, longitude, additional_info, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		emergency.ID,
		emergency.UserID,
		emergency.DetectionType,
		detectionData,
		emergency.IsConfirmed,
		emergency.Latitude,
		emergency.Longitude,
		emergency.AdditionalInfo,
		emergency.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save emergency: %w", err)
	}
	return nil
}

// GetEmergenciesByUser возвращает инциденты пользователя начиная с since,
// новые первыми
func (r *Repository) GetEmergenciesByUser(ctx context.Context, userID string, since time.Time) ([]*models.Emergency, error) {
	query := `
		SELECT id, user_id, detection_type, detection_data, is_confirmed, latitude, longitude, additional_info, created_at, resolved_at
		FROM emergencies
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergencies: %w", err)
	}
	defer rows.Close()

	emergencies := make([]*models.Emergency, 0)
	for rows.Next() {
		emergency := &models.Emergency{}
		var detectionData []byte
		err := rows.Scan(
			&emergency.ID,
			&emergency.UserID,
			&emergency.DetectionType,
			&detectionData,
			&emergency.IsConfirmed,
			&emergency.Latitude,
			&emergency.Longitude,
			&emergency.AdditionalInfo,
			&emergency.CreatedAt,
			&emergency.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency row: %w", err)
		}
		if len(detectionData) > 0 {
			if err := json.Unmarshal(detectionData, &emergency.DetectionData); err != nil {
				return nil, fmt.Errorf("failed to unmarshal detection data: %w", err)
			}
		}
		emergencies = append(emergencies, emergency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error emergencies iteration: %w", err)
	}
	return emergencies, nil
}

// ResolveEmergency выставляет resolved_at ровно один раз. Условие
// resolved_at IS NULL делает переход терминальным: повторное закрытие
// не затрагивает строк и возвращает ErrNotFound.
func (r *Repository) ResolveEmergency(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE emergencies SET
			resolved_at = NOW()
		WHERE id = $1 AND resolved_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to resolve emergency: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("open emergency with id %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// GetAnalytics возвращает агрегаты инцидентов пользователя за окно
func (r *Repository) GetAnalytics(ctx context.Context, userID string, since time.Time) (*models.EmergencyAnalytics, error) {
	analytics := &models.EmergencyAnalytics{ByType: make(map[string]int)}

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_confirmed)
		FROM emergencies
		WHERE user_id = $1 AND created_at >= $2;
	`
	err := r.db.QueryRow(ctx, query, userID, since).Scan(
		&analytics.TotalEmergencies,
		&analytics.ConfirmedEmergencies,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get emergency totals: %w", err)
	}

	typeQuery := `
		SELECT detection_type, COUNT(*)
		FROM emergencies
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY detection_type;
	`
	rows, err := r.db.Query(ctx, typeQuery, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get emergency counts by type: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var detectionType string
		var count int
		if err := rows.Scan(&detectionType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan analytics row: %w", err)
		}
		analytics.ByType[detectionType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error analytics iteration: %w", err)
	}
	return analytics, nil
}

// GetContacts возвращает экстренные контакты пользователя. Список
// читается на каждом SOS, поэтому кэшируется в Redis на 5 минут.
func (r *Repository) GetContacts(ctx context.Context, userID string) ([]*models.EmergencyContact, error) {
	if contacts, err := r.getContactsFromCache(ctx, userID); err == nil && contacts != nil {
		return contacts, nil
	}

	query := `
		SELECT id, user_id, name, phone, relation, created_at
		FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.EmergencyContact, 0)
	for rows.Next() {
		contact := &models.EmergencyContact{}
		err := rows.Scan(
			&contact.ID,
			&contact.UserID,
			&contact.Name,
			&contact.Phone,
			&contact.Relation,
			&contact.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error contacts iteration: %w", err)
	}

	// Ошибка кэширования не мешает основному пути
	_ = r.setContactsCache(ctx, userID, contacts)
	return contacts, nil
}

// AddContact добавляет экстренный контакт и инвалидирует кэш
func (r *Repository) AddContact(ctx context.Context, contact *models.EmergencyContact) error {
	query := `
		INSERT INTO emergency_contacts (user_id, name, phone, relation)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		contact.UserID,
		contact.Name,
		contact.Phone,
		contact.Relation,
	).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add emergency contact: %w", err)
	}

	if err := r.invalidateContactsCache(ctx, contact.UserID); err != nil {
		return fmt.Errorf("failed to invalidate contacts cache: %w", err)
	}
	return nil
}

// getContactsFromCache пытается получить контакты из Redis
func (r *Repository) getContactsFromCache(ctx context.Context, userID string) ([]*models.EmergencyContact, error) {
	key := fmt.Sprintf("contacts:%s", userID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contacts from cache: %w", err)
	}

	var contacts []*models.EmergencyContact
	if err := json.Unmarshal(val, &contacts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contacts from cache: %w", err)
	}
	return contacts, nil
}

// setContactsCache сохраняет контакты в Redis
func (r *Repository) setContactsCache(ctx context.Context, userID string, contacts []*models.EmergencyContact) error {
	key := fmt.Sprintf("contacts:%s", userID)
	val, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("failed to marshal contacts for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set contacts in cache: %w", err)
	}
	return nil
}

// invalidateContactsCache удаляет контакты пользователя из Redis кэша
func (r *Repository) invalidateContactsCache(ctx context.Context, userID string) error {
	key := fmt.Sprintf("contacts:%s", userID)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate contacts cache: %w", err)
	}
	return nil
}
