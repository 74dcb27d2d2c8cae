package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hawkerwatch/hygiene-api/internal/logger"
	"github.com/hawkerwatch/hygiene-api/internal/models"
)

// LeaderboardCacheRepository caches leaderboard pages in Redis, keyed
// by the (city, area) filter pair.
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewLeaderboardCacheRepository creates a new repository instance with the given TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func leaderboardKey(city, area string) string {
	return fmt.Sprintf("leaderboard:%s:%s", strings.ToLower(city), strings.ToLower(area))
}

// Get fetches a cached leaderboard page for the filter pair.
func (r *LeaderboardCacheRepository) Get(ctx context.Context, city, area string) ([]models.StallDB, error) {
	key := leaderboardKey(city, area)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("leaderboard not found in cache for %q/%q", city, area)
		}
		return nil, err
	}

	var stalls []models.StallDB
	if err := json.Unmarshal([]byte(val), &stalls); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(stalls),
		"error", nil,
	)

	return stalls, nil
}

// Set caches a leaderboard page with expiration.
func (r *LeaderboardCacheRepository) Set(ctx context.Context, city, area string, stalls []models.StallDB) error {
	key := leaderboardKey(city, area)

	data, err := json.Marshal(stalls)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"size", len(stalls),
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops every cached leaderboard page. Filters are arbitrary
// substrings, so no per-stall key set can be computed; the whole
// namespace is cleared after a recompute.
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "leaderboard:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	err = r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"keys", keys,
		"result", "invalidated",
		"error", err,
	)

	return err
}
