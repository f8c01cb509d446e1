package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

const flightLockTTL = 5 * time.Second

// InitRedis initializes the Redis client used for per-flight seat locks.
// The client is optional; when it stays nil the database-level guard on
// available_seats is the only protection, which is still correct.
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	ctx := context.Background()
	if _, err = RedisClient.Ping(ctx).Result(); err != nil {
		RedisClient = nil
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// AcquireFlightLock takes a short advisory lock on one flight's seat
// inventory. Returns true when Redis is not configured.
func AcquireFlightLock(ctx context.Context, flightID uint) (bool, error) {
	if RedisClient == nil {
		return true, nil
	}
	key := fmt.Sprintf("flight:lock:%d", flightID)
	return RedisClient.SetNX(ctx, key, "1", flightLockTTL).Result()
}

// ReleaseFlightLock drops the advisory lock for a flight.
func ReleaseFlightLock(ctx context.Context, flightID uint) error {
	if RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("flight:lock:%d", flightID)
	return RedisClient.Del(ctx, key).Err()
}
