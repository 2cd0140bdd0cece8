package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis เชื่อมต่อ Redis สำหรับ rate limit, token blacklist และ asynq
// Redis is optional in development: callers must tolerate a nil client.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI") // เช่น localhost:6379
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Rate limiting and background jobs disabled.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("❌ Failed to connect Redis:", err)
		RedisClient = nil
		RedisURI = ""
		return
	}
	log.Println("✅ Redis connected successfully")
}
