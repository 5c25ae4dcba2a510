package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deduplicator 短時間內的相同 POST 視為重複，直接回 429。
// 對應前端原本對生成請求做的 debounce，搬到伺服器端後
// 以「路徑 + 請求體哈希」當指紋。
type Deduplicator struct {
	mu      sync.Mutex
	window  time.Duration
	seen    map[string]time.Time
	stopCh  chan struct{}
	stopped sync.Once
}

// NewDeduplicator 創建去重器並啟動過期清理
func NewDeduplicator(window time.Duration) *Deduplicator {
	if window <= 0 {
		window = time.Second
	}
	d := &Deduplicator{
		window: window,
		seen:   make(map[string]time.Time),
		stopCh: make(chan struct{}),
	}
	go d.cleanupLoop()
	return d
}

// Middleware gin 中間件入口
func (d *Deduplicator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}
			hash := sha256.Sum256(body)
			fingerprint += ":" + hex.EncodeToString(hash[:])

			// 恢復請求體給後面的 handler
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		now := time.Now()
		d.mu.Lock()
		last, exists := d.seen[fingerprint]
		if exists && now.Sub(last) <= d.window {
			d.mu.Unlock()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Request too frequent",
				"code":  common.ErrCodeTooManyRequests,
			})
			return
		}
		d.seen[fingerprint] = now
		d.mu.Unlock()

		c.Next()
	}
}

// cleanupLoop 定期丟掉視窗外的指紋
func (d *Deduplicator) cleanupLoop() {
	ticker := time.NewTicker(10 * d.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			d.mu.Lock()
			for k, t := range d.seen {
				if now.Sub(t) > d.window {
					delete(d.seen, k)
				}
			}
			d.mu.Unlock()
		case <-d.stopCh:
			return
		}
	}
}

// Close 停止清理協程
func (d *Deduplicator) Close() {
	d.stopped.Do(func() {
		close(d.stopCh)
	})
}
