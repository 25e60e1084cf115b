package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	appinv "github.com/partserp/backend/internal/application/inventory"
	"github.com/redis/go-redis/v9"
)

// RedisSnapshotCache caches stock snapshots in Redis. Snapshot reads are
// best-effort: a cache failure never fails the read path, callers fall
// back to the database.
type RedisSnapshotCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisSnapshotCache creates a new Redis-based snapshot cache
func NewRedisSnapshotCache(cfg RedisConfig, ttl time.Duration) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSnapshotCacheWithClient(client, "", ttl), nil
}

// NewRedisSnapshotCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisSnapshotCacheWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisSnapshotCache {
	if keyPrefix == "" {
		keyPrefix = "stock:snapshot:"
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisSnapshotCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (c *RedisSnapshotCache) key(itemID, warehouseID uuid.UUID) string {
	return c.keyPrefix + itemID.String() + ":" + warehouseID.String()
}

// GetSnapshot returns the cached snapshot for an item-warehouse pair, or
// nil on a cache miss.
func (c *RedisSnapshotCache) GetSnapshot(ctx context.Context, itemID, warehouseID uuid.UUID) (*appinv.StockSnapshot, error) {
	data, err := c.client.Get(ctx, c.key(itemID, warehouseID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	var snapshot appinv.StockSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// A corrupt entry is treated as a miss; the next write replaces it.
		return nil, nil
	}
	return &snapshot, nil
}

// SetSnapshot stores a snapshot with the configured TTL
func (c *RedisSnapshotCache) SetSnapshot(ctx context.Context, snapshot appinv.StockSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, c.key(snapshot.ItemID, snapshot.WarehouseID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot in cache: %w", err)
	}
	return nil
}

// InvalidateSnapshot removes the cached snapshot for an item-warehouse pair
func (c *RedisSnapshotCache) InvalidateSnapshot(ctx context.Context, itemID, warehouseID uuid.UUID) error {
	if err := c.client.Del(ctx, c.key(itemID, warehouseID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}

// Ensure RedisSnapshotCache implements SnapshotCache
var _ appinv.SnapshotCache = (*RedisSnapshotCache)(nil)
