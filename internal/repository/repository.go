package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Repository - pgx-реализация зеркала волонтеров и бд инцидентов.
// Redis используется как кэш экстренных контактов и GEO-реплика позиций
// активных волонтеров для внешних потребителей.
type Repository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

// NewRepository создает репозиторий поверх пула Postgres и клиента Redis
func NewRepository(db *pgxpool.Pool, redisClient *redis.Client) *Repository {
	return &Repository{
		db:          db,
		redisClient: redisClient,
	}
}
