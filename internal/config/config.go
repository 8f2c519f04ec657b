package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// SMS-шлюз для оповещения экстренных контактов
	SMSGatewayURL    string        `env:"SMS_GATEWAY_URL"`
	SMSGatewaySecret string        `env:"SMS_GATEWAY_SECRET"`
	NotifyTimeout    time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`

	// Push-шлюз для оповещения ближайших волонтеров
	PushGatewayURL string        `env:"PUSH_GATEWAY_URL"`
	PushMaxRetries int           `env:"PUSH_MAX_RETRIES" envDefault:"3"`
	PushBaseDelay  time.Duration `env:"PUSH_BASE_DELAY" envDefault:"1s"`

	// Внешний классификатор аудио (детектор дистресса)
	DetectorURL   string `env:"DETECTOR_URL"`
	DetectorToken string `env:"DETECTOR_TOKEN"`

	// Параметры диспетчеризации
	DistressThreshold float64 `env:"DISTRESS_THRESHOLD" envDefault:"0.7"`
	DefaultRadiusKm   float64 `env:"DEFAULT_RADIUS_KM" envDefault:"5.0"`
	MaxNearbyResults  int     `env:"MAX_NEARBY_RESULTS" envDefault:"50"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		SMSGatewayURL:     os.Getenv("SMS_GATEWAY_URL"),
		SMSGatewaySecret:  os.Getenv("SMS_GATEWAY_SECRET"),
		NotifyTimeout:     getEnvAsDuration("NOTIFY_TIMEOUT", 5*time.Second),
		PushGatewayURL:    os.Getenv("PUSH_GATEWAY_URL"),
		PushMaxRetries:    getEnvAsInt("PUSH_MAX_RETRIES", 3),
		PushBaseDelay:     getEnvAsDuration("PUSH_BASE_DELAY", time.Second),
		DetectorURL:       os.Getenv("DETECTOR_URL"),
		DetectorToken:     os.Getenv("DETECTOR_TOKEN"),
		DistressThreshold: getEnvAsFloat("DISTRESS_THRESHOLD", 0.7),
		DefaultRadiusKm:   getEnvAsFloat("DEFAULT_RADIUS_KM", 5.0),
		MaxNearbyResults:  getEnvAsInt("MAX_NEARBY_RESULTS", 50),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
