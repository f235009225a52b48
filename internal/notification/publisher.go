package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "alert_events"
)

// Виды событий жизненного цикла оповещения
const (
	EventAlertCreated   = "alert_created"
	EventAlertUpdated   = "alert_updated"
	EventAlertResponded = "alert_responded"
	EventAlertEscalated = "alert_escalated"
)

// AlertEvent - событие жизненного цикла оповещения для внешней доставки
type AlertEvent struct {
	AlertID    uuid.UUID `json:"alert_id"`
	TripID     uuid.UUID `json:"trip_id"`
	UserID     string    `json:"user_id"`
	Kind       string    `json:"kind"`
	AlertType  string    `json:"alert_type"`
	Status     string    `json:"status"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm *float64  `json:"distance_km,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий оповещений
type Publisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие оповещения в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
