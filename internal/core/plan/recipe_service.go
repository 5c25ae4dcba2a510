// Package plan 組裝提示詞、呼叫 AI 並解析三種生成結果：
// 單道食譜、佇列整合規劃、快手餐建議
package plan

import (
	"context"
	"regexp"
	"strings"

	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/pkg/common"
)

// Completer 對 AI 服務的最小依賴，測試時換成假實作
type Completer interface {
	Complete(ctx context.Context, req common.CompletionRequest) (string, error)
}

const recipeSystemPrompt = `You are Empty Beli, an app that helps people cook restaurant dishes at home for cheap.

Given a dish name (and optionally restaurant), return a complete recipe with grocery list and cost comparison.

Return ONLY valid JSON matching this exact structure:
{
  "dish": "Dish Name",
  "restaurant": "Restaurant Name or 'Popular Restaurant'",
  "restaurant_price": 32,
  "home_price": 6.50,
  "savings": 25.50,
  "savings_percent": 79,
  "time_mins": 35,
  "difficulty": "Easy" | "Medium" | "Hard",
  "servings": 2,
  "ingredients": ["ingredient with quantity", ...],
  "steps": ["step 1", "step 2", ...],
  "grocery_list": [
    {"item": "Item name", "qty": "quantity", "cost": 2.00},
    ...
  ]
}

Rules:
- Be accurate with grocery prices (US average)
- restaurant_price should reflect typical menu price for that dish
- home_price is the sum of grocery_list costs divided by servings
- Include all ingredients needed, even basics like oil/salt
- Steps should be clear and numbered
- Difficulty: Easy (<20 mins, simple), Medium (20-45 mins), Hard (>45 mins or complex technique)
- Return ONLY the JSON, no other text`

const photoQuestion = "What dish is in this photo? Generate a recipe to make it at home. Return only JSON."

var dataURLPattern = regexp.MustCompile(`^data:(.+);base64,(.+)$`)

// RecipeService 單道食譜生成
type RecipeService struct {
	config    *config.Config
	completer Completer
}

// NewRecipeService 創建食譜生成服務
func NewRecipeService(cfg *config.Config, completer Completer) *RecipeService {
	return &RecipeService{
		config:    cfg,
		completer: completer,
	}
}

// Generate 依文字或照片生成食譜
func (s *RecipeService) Generate(ctx context.Context, input common.DishInput) (*common.RecipeResult, error) {
	req := common.CompletionRequest{
		System:    recipeSystemPrompt,
		MaxTokens: s.config.Anthropic.RecipeTokens,
	}

	switch {
	case input.Type == "image" && input.ImageBase64 != "":
		image, err := parseImageDataURL(input.ImageBase64, s.config.Image.MaxSizeBytes)
		if err != nil {
			return nil, err
		}
		req.Image = image
		req.UserText = photoQuestion
	case input.Type == "text" && strings.TrimSpace(input.Text) != "":
		req.UserText = "User wants to make: " + input.Text
	default:
		return nil, common.NewValidationError("Invalid input. Provide either text or image.")
	}

	raw, err := s.completer.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	var recipe common.RecipeResult
	if err := common.ParseJSON(common.StripCodeFence(raw), &recipe); err != nil {
		return nil, common.ErrAIParse
	}
	return &recipe, nil
}

// parseImageDataURL 拆出 data URL 的 media type 與 base64 內容
func parseImageDataURL(dataURL string, maxSizeBytes int64) (*common.ImageBlock, error) {
	m := dataURLPattern.FindStringSubmatch(dataURL)
	if m == nil {
		return nil, common.NewValidationError("Invalid image format")
	}
	if maxSizeBytes > 0 && int64(len(m[2])) > maxSizeBytes {
		return nil, common.NewValidationError("Image too large")
	}
	return &common.ImageBlock{
		MediaType:  m[1],
		Base64Data: m[2],
	}, nil
}
