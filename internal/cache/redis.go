package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/config"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	toursTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, toursTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		toursTTL: toursTTL,
	}
}

func (c *RedisCache) GetTours(ctx context.Context) ([]domain.Tour, error) {
	data, err := c.client.Get(ctx, toursKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var tours []domain.Tour
	if err := json.Unmarshal(data, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *RedisCache) SetTours(ctx context.Context, tours []domain.Tour) error {
	payload, err := json.Marshal(tours)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, toursKey(), payload, c.toursTTL).Err()
}

func (c *RedisCache) InvalidateTours(ctx context.Context) error {
	return c.client.Del(ctx, toursKey()).Err()
}

// MarkWebhookSeen dedups webhook deliveries. Returns false when the session
// id was already recorded within the TTL window.
func (c *RedisCache) MarkWebhookSeen(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, webhookKey(sessionID), "seen", ttl).Result()
}

func toursKey() string {
	return "cache:tours"
}

func webhookKey(sessionID string) string {
	return fmt.Sprintf("webhook:session:%s", sessionID)
}
