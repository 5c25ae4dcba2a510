package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beli-at-home/internal/core/ai/cache"
	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

func testConfig(cacheEnabled bool) *config.Config {
	return &config.Config{
		App: config.AppConfig{Version: "1.2.3"},
		Cache: config.CacheConfig{
			Enabled:         cacheEnabled,
			MaxSize:         10,
			TTL:             time.Minute,
			CleanupInterval: time.Minute,
		},
	}
}

func newRouter(t *testing.T, cfg *config.Config, cm *cache.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(cfg, cm)
	r := gin.New()
	r.GET("/health", h.Check)
	r.GET("/ready", h.Readiness)
	r.GET("/live", h.Liveness)
	return r
}

func TestCheckWithoutCache(t *testing.T) {
	r := newRouter(t, testConfig(false), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
	if body["version"] != "1.2.3" {
		t.Errorf("version = %v, want 1.2.3", body["version"])
	}
	if _, exists := body["cache"]; exists {
		t.Error("cache field present without a cache manager")
	}
}

func TestCheckReportsCacheStats(t *testing.T) {
	cfg := testConfig(true)
	cm := cache.NewManager(cfg)
	if cm == nil {
		t.Fatal("NewManager() = nil with cache enabled")
	}
	defer cm.Close()

	ctx := context.Background()
	req := common.CompletionRequest{System: "sys", UserText: "paella"}
	if _, hit := cm.Get(ctx, req); hit {
		t.Fatal("Get() hit on empty cache")
	}
	if err := cm.Set(ctx, req, "resp"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, hit := cm.Get(ctx, req); !hit {
		t.Fatal("Get() miss after Set")
	}

	r := newRouter(t, cfg, cm)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Cache map[string]any `json:"cache"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Cache == nil {
		t.Fatal("cache field missing with a cache manager attached")
	}
	if got := body.Cache["size"]; got != float64(1) {
		t.Errorf("cache size = %v, want 1", got)
	}
	if got := body.Cache["hits"]; got != float64(1) {
		t.Errorf("cache hits = %v, want 1", got)
	}
	if got := body.Cache["misses"]; got != float64(1) {
		t.Errorf("cache misses = %v, want 1", got)
	}
}

func TestReadinessAndLiveness(t *testing.T) {
	r := newRouter(t, testConfig(false), nil)

	for path, want := range map[string]string{"/ready": "ready", "/live": "alive"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", path, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: unmarshal body: %v", path, err)
		}
		if body["status"] != want {
			t.Errorf("%s: status = %q, want %q", path, body["status"], want)
		}
	}
}
