package database

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a redis client for the pricing-config cache, or nil
// when REDIS_ADDR is unset. The cache is optional; without it every config
// read goes straight to DynamoDB.
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}
