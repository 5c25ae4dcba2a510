package cache

import (
	"context"
	"testing"
	"time"

	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/pkg/common"
)

func testConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestNewManagerDisabled(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Enabled: false}}
	if m := NewManager(cfg); m != nil {
		t.Fatal("NewManager() != nil with cache disabled")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	defer m.Close()

	ctx := context.Background()
	req := common.CompletionRequest{System: "sys", UserText: "ramen"}

	if _, hit := m.Get(ctx, req); hit {
		t.Fatal("Get() hit on empty cache")
	}
	if err := m.Set(ctx, req, "broth and noodles"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, hit := m.Get(ctx, req)
	if !hit {
		t.Fatal("Get() miss after Set")
	}
	if got != "broth and noodles" {
		t.Errorf("Get() = %q, want %q", got, "broth and noodles")
	}

	// 請求內容不同就是不同鍵
	other := common.CompletionRequest{System: "sys", UserText: "udon"}
	if _, hit := m.Get(ctx, other); hit {
		t.Error("Get() hit for a different request")
	}
}

func TestExpiredEntryEvicted(t *testing.T) {
	m := NewManager(testConfig(10, 10*time.Millisecond))
	defer m.Close()

	ctx := context.Background()
	req := common.CompletionRequest{System: "sys", UserText: "paella"}
	if err := m.Set(ctx, req, "resp"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if _, hit := m.Get(ctx, req); hit {
		t.Fatal("Get() hit after TTL elapsed")
	}

	stats := m.Stats()
	if stats["evictions"].(int64) < 1 {
		t.Errorf("evictions = %v, want >= 1", stats["evictions"])
	}
}

func TestLRUEvictionWhenFull(t *testing.T) {
	m := NewManager(testConfig(2, time.Minute))
	defer m.Close()

	ctx := context.Background()
	first := common.CompletionRequest{UserText: "a"}
	second := common.CompletionRequest{UserText: "b"}
	third := common.CompletionRequest{UserText: "c"}

	if err := m.Set(ctx, first, "1"); err != nil {
		t.Fatalf("Set(first) error: %v", err)
	}
	if err := m.Set(ctx, second, "2"); err != nil {
		t.Fatalf("Set(second) error: %v", err)
	}

	// second 被讀過，LRU 應該淘汰 first
	if _, hit := m.Get(ctx, second); !hit {
		t.Fatal("Get(second) miss")
	}
	if err := m.Set(ctx, third, "3"); err != nil {
		t.Fatalf("Set(third) error: %v", err)
	}

	if _, hit := m.Get(ctx, first); hit {
		t.Error("Get(first) hit, expected LRU eviction")
	}
	if _, hit := m.Get(ctx, third); !hit {
		t.Error("Get(third) miss after insert")
	}
}

func TestStatsTracksHitRatio(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	defer m.Close()

	ctx := context.Background()
	req := common.CompletionRequest{UserText: "bhindi"}
	m.Get(ctx, req) // miss
	if err := m.Set(ctx, req, "resp"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	m.Get(ctx, req) // hit

	stats := m.Stats()
	if stats["hits"].(int64) != 1 {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"].(int64) != 1 {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
	if stats["hit_ratio"].(float64) != 0.5 {
		t.Errorf("hit_ratio = %v, want 0.5", stats["hit_ratio"])
	}
	if stats["size"].(int) != 1 {
		t.Errorf("size = %v, want 1", stats["size"])
	}
}

func TestCloseStopsCleanupAndIsIdempotent(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	if err := m.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}

	stats := m.Stats()
	if stats["size"].(int) != 0 {
		t.Errorf("size after Close = %v, want 0", stats["size"])
	}
}
