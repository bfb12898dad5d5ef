package cache

import (
	"context"
	"encoding/json"
	"time"

	"myevent-api/core/logger"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("RedisCache:Ping:Error:", err)
		return nil, err
	}

	logger.Info("Redis connected", "addr", cfg.Addr)
	return &RedisCache{client: client}, nil
}

func (r *RedisCache) SetVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error {
	return r.client.Set(ctx, verificationKey(email), code, ttl).Err()
}

func (r *RedisCache) GetVerificationCode(ctx context.Context, email string) (string, error) {
	code, err := r.client.Get(ctx, verificationKey(email)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return code, err
}

func (r *RedisCache) DeleteVerificationCode(ctx context.Context, email string) error {
	return r.client.Del(ctx, verificationKey(email)).Err()
}

func (r *RedisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, blacklistKey(token), 1, ttl).Err()
}

func (r *RedisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, raw, ttl).Err()
}

func (r *RedisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
