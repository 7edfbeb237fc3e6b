// Package cache кэширует активные промоакции поля в Redis.
// Кэш используется только в read-only котировках цены: путь reserve всегда
// читает промоакции из БД внутри транзакции.
//
// Nil-клиент допустим: кэш деградирует в прямые чтения из БД.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

// PromotionCache кэш активных промоакций по полю
type PromotionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPromotionCache создает кэш промоакций.
// client может быть nil — тогда Get всегда возвращает промах.
func NewPromotionCache(client *redis.Client, ttl time.Duration) *PromotionCache {
	return &PromotionCache{client: client, ttl: ttl}
}

// Get возвращает закэшированные промоакции поля.
// Второе значение false означает промах (или отключенный кэш).
func (c *PromotionCache) Get(ctx context.Context, fieldID int64) ([]*domain.Promotion, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, c.key(fieldID)).Bytes()
	if err != nil {
		return nil, false
	}

	var promotions []*domain.Promotion
	if err := json.Unmarshal(data, &promotions); err != nil {
		return nil, false
	}

	return promotions, true
}

// Set сохраняет промоакции поля в кэш. Ошибки Redis игнорируются —
// кэш не должен влиять на основной поток.
func (c *PromotionCache) Set(ctx context.Context, fieldID int64, promotions []*domain.Promotion) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(promotions)
	if err != nil {
		return
	}

	_ = c.client.Set(ctx, c.key(fieldID), data, c.ttl).Err()
}

// Invalidate сбрасывает кэш промоакций поля
func (c *PromotionCache) Invalidate(ctx context.Context, fieldID int64) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, c.key(fieldID)).Err()
}

func (c *PromotionCache) key(fieldID int64) string {
	return fmt.Sprintf("promotions:field:%d", fieldID)
}
