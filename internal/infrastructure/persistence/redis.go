package persistence

import (
	"context"
	"fmt"

	"beli-at-home/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// 集合鍵，一個集合一份 JSON 文件
const (
	KeyPantry              = "beli:pantry"
	KeyCustomEssentials    = "beli:custom-essentials"
	KeyCart                = "beli:cart"
	KeyMealQueue           = "beli:meal-queue"
	KeyLeftoverSuggestions = "beli:leftover-suggestions"
	KeyHostingEvents       = "beli:hosting-events"
	KeyQuickBites          = "beli:quick-bites"
)

// RedisStore Redis 實作
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 創建 Redis 存儲並測試連接
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Save 覆寫集合文件
func (s *RedisStore) Save(ctx context.Context, key string, v interface{}) error {
	doc, err := encodeDocument(v)
	if err != nil {
		return err
	}
	// 集合沒有過期時間，資料歸使用者所有
	if err := s.client.Set(ctx, key, doc, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Load 讀取集合文件
func (s *RedisStore) Load(ctx context.Context, key string, v interface{}) error {
	doc, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	return decodeDocument(doc, v)
}

// Close 關閉連接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
