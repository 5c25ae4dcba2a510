package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.POST("/generate/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimitRejectsWhenBucketEmpty(t *testing.T) {
	r := newTestRouter(RateLimit(2, time.Minute))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate/test", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate/test", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After = %q, want %q", got, "60")
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["code"] != "TOO_MANY_REQUESTS" {
		t.Errorf("code = %v, want TOO_MANY_REQUESTS", body["code"])
	}
}

func TestRateLimitRefillsOverTime(t *testing.T) {
	rl := NewRateLimiter(10, 100*time.Millisecond)
	for i := 0; i < 10; i++ {
		if !rl.Allow() {
			t.Fatalf("token %d: Allow() = false, want true", i+1)
		}
	}
	if rl.Allow() {
		t.Fatal("Allow() = true with empty bucket")
	}

	time.Sleep(50 * time.Millisecond)
	if !rl.Allow() {
		t.Error("Allow() = false after refill window")
	}
}

func TestBodySizeLimitRejectsOversizedBody(t *testing.T) {
	r := newTestRouter(BodySizeLimit(16))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate/test", strings.NewReader(strings.Repeat("a", 64)))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["code"] != "REQUEST_TOO_LARGE" {
		t.Errorf("code = %v, want REQUEST_TOO_LARGE", body["code"])
	}
}

func TestBodySizeLimitAllowsSmallBody(t *testing.T) {
	r := newTestRouter(BodySizeLimit(1024))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate/test", strings.NewReader(`{"a":1}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestDeduplicatorBlocksRepeatedPost(t *testing.T) {
	d := NewDeduplicator(time.Minute)
	defer d.Close()
	r := newTestRouter(d.Middleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate/test", strings.NewReader(`{"dish":"paella"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/generate/test", strings.NewReader(`{"dish":"paella"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("duplicate request: status = %d, want 429", w.Code)
	}

	// 請求體不同就是不同指紋
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/generate/test", strings.NewReader(`{"dish":"ramen"}`))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("different body: status = %d, want 200", w.Code)
	}
}

func TestDeduplicatorCloseIsIdempotent(t *testing.T) {
	d := NewDeduplicator(time.Second)
	d.Close()
	d.Close()
}
