package database

import (
	"context"
	"log"

	"github.com/tomaspozo/hackathon-platform/config"

	"github.com/redis/go-redis/v9"
)

// Cache is the shared redis client used for leaderboard reads.
// It stays nil when no REDIS_ADDR is configured and caching is skipped.
var Cache *redis.Client

// InitCache connects to redis when an address is configured
func InitCache() {
	if config.RedisAddr == "" {
		log.Println("Redis not configured, leaderboard caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unreachable, leaderboard caching disabled: ", err)
		return
	}

	Cache = client
}
