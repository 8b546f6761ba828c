package database

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisHelper is nil unless InitRedis ran; the package-level accessors
// below degrade to cache misses so the scanner works without Redis.
var RedisHelper *redisUtil

type redisUtil struct {
	client *redis.Client
	ctx    context.Context
}

func InitRedis(url string) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("Invalid Redis URL: %v", err)
	}

	if opts.TLSConfig == nil {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	redisClient := redis.NewClient(opts)
	ctx := context.Background()

	_, err = redisClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis/Valkey: %v", err)
	}

	log.Println("Connected to Redis successfully")

	RedisHelper = &redisUtil{
		client: redisClient,
		ctx:    ctx,
	}
}

func (r *redisUtil) Set(key string, value interface{}, expiration time.Duration) error {
	err := r.client.Set(r.ctx, key, value, expiration).Err()
	if err != nil {
		log.Printf("Redis SET Error [%s]: %v", key, err)
	}
	return err
}

func (r *redisUtil) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		log.Printf("Redis GET Error [%s]: %v", key, err)
		return "", err
	}
	return val, nil
}

func (r *redisUtil) Delete(key string) error {
	err := r.client.Del(r.ctx, key).Err()
	if err != nil {
		log.Printf("Redis DEL Error [%s]: %v", key, err)
	}
	return err
}

// GetAsStruct reads a JSON value into out. Returns false when Redis is not
// configured, the key is absent, or the payload does not decode.
func GetAsStruct(key string, out any) (bool, error) {
	if RedisHelper == nil {
		return false, nil
	}
	val, err := RedisHelper.Get(key)
	if err != nil || val == "" {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, err
	}
	return true, nil
}

// SetStruct stores value as JSON. A nil helper is a no-op.
func SetStruct(key string, value any, expiration time.Duration) error {
	if RedisHelper == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RedisHelper.Set(key, string(payload), expiration)
}
