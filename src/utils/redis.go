package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-Sentinel/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// ensureClient returns the shared Redis client managed by the database package.
// If the database package didn't initialize Redis, this will return nil and
// callers should handle that case (they already do).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
// Returns nil if Redis is not available (development mode)
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil // ไม่มี Redis ใน dev mode - ข้าม
	}

	key := fmt.Sprintf("blacklist:%s", token)
	err := client.Set(Ctx, key, "1", expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
// Returns false if Redis is not available (development mode - allow all tokens)
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Token ไม่อยู่ใน blacklist
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

// RecordLoginAttempt นับจำนวนครั้งที่ login ล้มเหลวต่อ email
func RecordLoginAttempt(email string, success bool) {
	client := ensureClient()
	if client == nil {
		return
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	if success {
		client.Del(Ctx, key)
		return
	}

	n, err := client.Incr(Ctx, key).Result()
	if err != nil {
		return
	}
	if n == 1 {
		client.Expire(Ctx, key, loginCooldown)
	}
}

// IsRateLimited ตรวจว่า email นี้ลอง login ผิดเกิน limit หรือยัง
func IsRateLimited(email string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	n, err := client.Get(Ctx, key).Int64()
	if err != nil {
		return false
	}
	return n >= maxLoginAttempts
}

// GetRemainingCooldownTime เวลาที่เหลือก่อน login ได้อีกครั้ง
func GetRemainingCooldownTime(email string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	ttl, err := client.TTL(Ctx, key).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}
