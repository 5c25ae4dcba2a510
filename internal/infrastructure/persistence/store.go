// Package persistence 提供集合層級的鍵值持久化：
// 每個集合一個字串鍵，整份 JSON 文件在每次變更時覆寫。
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// SchemaVersion 目前的文件格式版本。
// 原系統的集合沒有版本欄位，曾因結構演進留下兩套不相容的資料，
// 這裡補上版本信封讓未來的遷移有判斷依據。
const SchemaVersion = 1

// ErrNotFound 表示鍵不存在
var ErrNotFound = errors.New("persistence: key not found")

// Store 集合持久化介面。Save 覆寫整份集合，Load 將整份集合讀進 v。
type Store interface {
	Save(ctx context.Context, key string, v interface{}) error
	Load(ctx context.Context, key string, v interface{}) error
	Close() error
}

// envelope 帶版本的文件信封
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

// encodeDocument 將集合包進版本信封後序列化
func encodeDocument(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collection: %w", err)
	}
	doc, err := json.Marshal(envelope{
		SchemaVersion: SchemaVersion,
		Data:          data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return doc, nil
}

// decodeDocument 解開版本信封並還原集合
func decodeDocument(doc []byte, v interface{}) error {
	var env envelope
	if err := json.Unmarshal(doc, &env); err != nil {
		return fmt.Errorf("failed to unmarshal envelope: %w", err)
	}
	if env.SchemaVersion != SchemaVersion {
		return fmt.Errorf("unsupported schema version %d", env.SchemaVersion)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("failed to unmarshal collection: %w", err)
	}
	return nil
}

// MemoryStore 純記憶體實作，用於測試與未開 Redis 的環境
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore 創建記憶體存儲
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
	}
}

// Save 覆寫集合文件
func (s *MemoryStore) Save(ctx context.Context, key string, v interface{}) error {
	doc, err := encodeDocument(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = doc
	return nil
}

// Load 讀取集合文件
func (s *MemoryStore) Load(ctx context.Context, key string, v interface{}) error {
	s.mu.RLock()
	doc, exists := s.docs[key]
	s.mu.RUnlock()
	if !exists {
		return ErrNotFound
	}
	return decodeDocument(doc, v)
}

// Close 實現 Store 介面
func (s *MemoryStore) Close() error {
	return nil
}

// SeedRaw 直接塞入原始文件，測試損壞資料的回退行為用
func (s *MemoryStore) SeedRaw(key string, doc []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = doc
}
