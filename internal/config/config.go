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

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Safety Monitoring Config
	DefaultDeviationThresholdKm float64       `env:"DEFAULT_DEVIATION_THRESHOLD_KM" envDefault:"2.0"`
	AlertResponseDeadline       time.Duration `env:"ALERT_RESPONSE_DEADLINE" envDefault:"15m"`
	EscalationCronSpec          string        `env:"ESCALATION_CRON_SPEC" envDefault:"@every 1m"`
	BatteryAlertLevel           int           `env:"BATTERY_ALERT_LEVEL" envDefault:"15"`

	// Stationary Check Config
	StationaryMinSamples    int           `env:"STATIONARY_MIN_SAMPLES" envDefault:"3"`
	StationaryWindow        time.Duration `env:"STATIONARY_WINDOW" envDefault:"2h"`
	StationarySpreadKm      float64       `env:"STATIONARY_SPREAD_KM" envDefault:"0.5"`
	StationaryFarFromPlanKm float64       `env:"STATIONARY_FAR_FROM_PLAN_KM" envDefault:"1.0"`

	// Ограничение ожидания блокировки на поездку при конкурентных сэмплах
	TripLockTimeout time.Duration `env:"TRIP_LOCK_TIMEOUT" envDefault:"3s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

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
		DatabaseURL:                 os.Getenv("DATABASE_URL"),
		HTTPPort:                    getEnv("HTTP_PORT", "8080"),
		LogLevel:                    getEnv("LOG_LEVEL", "info"),
		RedisAddr:                   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                   os.Getenv("REDIS_PASSWORD"),
		RedisDB:                     getEnvAsInt("REDIS_DB", 0),
		WebhookURL:                  os.Getenv("WEBHOOK_URL"),
		WebhookSecret:               os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:              getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:           getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:            getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DefaultDeviationThresholdKm: getEnvAsFloat("DEFAULT_DEVIATION_THRESHOLD_KM", 2.0),
		AlertResponseDeadline:       getEnvAsDuration("ALERT_RESPONSE_DEADLINE", 15*time.Minute),
		EscalationCronSpec:          getEnv("ESCALATION_CRON_SPEC", "@every 1m"),
		BatteryAlertLevel:           getEnvAsInt("BATTERY_ALERT_LEVEL", 15),
		StationaryMinSamples:        getEnvAsInt("STATIONARY_MIN_SAMPLES", 3),
		StationaryWindow:            getEnvAsDuration("STATIONARY_WINDOW", 2*time.Hour),
		StationarySpreadKm:          getEnvAsFloat("STATIONARY_SPREAD_KM", 0.5),
		StationaryFarFromPlanKm:     getEnvAsFloat("STATIONARY_FAR_FROM_PLAN_KM", 1.0),
		TripLockTimeout:             getEnvAsDuration("TRIP_LOCK_TIMEOUT", 3*time.Second),
		StatsTimeWindowMinutes:      getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
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
