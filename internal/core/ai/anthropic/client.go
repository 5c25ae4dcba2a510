// Package anthropic 封裝 Anthropic Messages API
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	baseURL    = "https://api.anthropic.com"
	apiVersion = "2023-06-01"
)

// Client Anthropic API 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建 Anthropic 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Anthropic.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("anthropic-version", apiVersion)

	return &Client{
		config: cfg,
		client: client,
	}
}

// contentBlock 使用者訊息的內容區塊，文字或圖片
type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

// imageSource base64 圖片來源
type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// message 單輪訊息
type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

// request Messages API 請求
type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

// response Messages API 回應，只取需要的欄位
type response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete 發送一輪請求並回傳模型輸出的純文字
func (c *Client) Complete(ctx context.Context, req common.CompletionRequest) (string, error) {
	if c.config.Anthropic.APIKey == "" {
		return "", common.ErrMissingAPIKey
	}

	blocks := []contentBlock{}
	if req.Image != nil {
		blocks = append(blocks, contentBlock{
			Type: "image",
			Source: &imageSource{
				Type:      "base64",
				MediaType: req.Image.MediaType,
				Data:      req.Image.Base64Data,
			},
		})
	}
	blocks = append(blocks, contentBlock{Type: "text", Text: req.UserText})

	body := request{
		Model:     c.config.Anthropic.Model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages: []message{
			{Role: "user", Content: blocks},
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", c.config.Anthropic.APIKey).
		SetBody(body).
		Post("/v1/messages")

	if err != nil {
		return "", common.NewError(common.ErrCodeAIService, "AI 服務錯誤", http.StatusServiceUnavailable,
			fmt.Errorf("failed to send request to Anthropic: %w", err))
	}

	if resp.StatusCode() != http.StatusOK {
		var apiErr response
		detail := resp.String()
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error != nil {
			detail = apiErr.Error.Message
		}
		common.LogError("Anthropic API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.Anthropic.Model),
			zap.String("detail", detail),
		)
		return "", common.NewError(common.ErrCodeAIService, "AI 服務錯誤", http.StatusServiceUnavailable,
			fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode(), detail))
	}

	var result response
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", common.NewError(common.ErrCodeAIService, "AI 服務錯誤", http.StatusServiceUnavailable,
			fmt.Errorf("failed to parse Anthropic response: %w", err))
	}

	for _, block := range result.Content {
		if block.Type == "text" && block.Text != "" {
			common.LogDebug("Anthropic response received",
				zap.String("model", c.config.Anthropic.Model),
				zap.Int("content_length", len(block.Text)),
			)
			return block.Text, nil
		}
	}

	return "", common.ErrEmptyAIResponse
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
