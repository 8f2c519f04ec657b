package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pushQueueKey = "push_events"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// PushEvent - событие push-оповещения ближайших волонтеров об инциденте
type PushEvent struct {
	EmergencyID string    `json:"emergency_id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Recipients  []string  `json:"recipients"`
	Timestamp   time.Time `json:"timestamp"`
}

// PushPublisher - интерфейс для публикации push-событий
type PushPublisher interface {
	Publish(ctx context.Context, event PushEvent) error
}

// RedisPushPublisher - реализация PushPublisher, использующая Redis
type RedisPushPublisher struct {
	redisClient *redis.Client
}

// NewRedisPushPublisher создает новый RedisPushPublisher
func NewRedisPushPublisher(client *redis.Client) *RedisPushPublisher {
	return &RedisPushPublisher{
		redisClient: client,
	}
}

// Publish публикует push-событие в очередь Redis
func (p *RedisPushPublisher) Publish(ctx context.Context, event PushEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal push event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push event to Redis: %w", err)
	}
	return nil
}
