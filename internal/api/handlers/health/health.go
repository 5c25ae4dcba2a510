// Package health 健康檢查端點
package health

import (
	"net/http"
	"runtime"
	"time"

	"beli-at-home/internal/core/ai/cache"
	"beli-at-home/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// Response 健康檢查響應
type Response struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// Handler 健康檢查處理程序
type Handler struct {
	config       *config.Config
	cacheManager *cache.Manager
}

// NewHandler 創建健康檢查處理程序，cacheManager 關閉時傳 nil
func NewHandler(cfg *config.Config, cacheManager *cache.Manager) *Handler {
	return &Handler{config: cfg, cacheManager: cacheManager}
}

// Check 健康檢查
func (h *Handler) Check(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	resp := Response{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}
	if h.cacheManager != nil {
		resp.Cache = h.cacheManager.Stats()
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness 就緒檢查
func (h *Handler) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Liveness 存活檢查
func (h *Handler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
