// Package service 統一 AI 請求入口：頻率限制、快取、再打上游
package service

import (
	"context"
	"sync"
	"time"

	"beli-at-home/internal/core/ai/anthropic"
	"beli-at-home/internal/core/ai/cache"
	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/pkg/common"
)

// Service AI 服務
type Service struct {
	config      *config.Config
	client      *anthropic.Client
	cache       *cache.Manager
	mu          sync.Mutex
	lastRequest time.Time
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, cacheManager *cache.Manager) *Service {
	return &Service{
		config: cfg,
		client: anthropic.NewClient(cfg),
		cache:  cacheManager,
	}
}

// Complete 發送請求。相同的 prompt 與圖片組合會命中快取，
// 不會重複打上游。
func (s *Service) Complete(ctx context.Context, req common.CompletionRequest) (string, error) {
	if s.config.Anthropic.APIKey == "" {
		return "", common.ErrMissingAPIKey
	}
	if err := s.checkRequestRate(); err != nil {
		return "", err
	}

	if s.cache != nil {
		if val, ok := s.cache.Get(ctx, req); ok {
			return val, nil
		}
	}

	start := time.Now()
	content, err := s.client.Complete(ctx, req)
	common.LogAICall(time.Since(start), err, requestIDFromContext(ctx))
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, req, content)
	}
	return content, nil
}

// checkRequestRate 限制對上游的最小請求間隔
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.config.RateLimit.Enabled {
		return nil
	}

	now := time.Now()
	minInterval := s.config.RateLimit.Window / time.Duration(s.config.RateLimit.Requests)
	if now.Sub(s.lastRequest) < minInterval {
		return common.ErrTooManyRequests
	}

	s.lastRequest = now
	return nil
}

// requestIDFromContext 取出 middleware 放進來的 request id
func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(common.ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// Close 關閉服務
func (s *Service) Close() error {
	return s.client.Close()
}
