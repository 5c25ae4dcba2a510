package plan

import (
	"context"
	"fmt"

	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/pkg/common"
)

const quickBitesPromptFormat = `You are a helpful cooking assistant. Based on the following pantry items, suggest 3-4 quick, easy meals that can be made.

PANTRY ITEMS:
%s
For each suggestion, provide:
1. A catchy name
2. A brief description (1 sentence)
3. Which pantry ingredients it uses (from the list above)
4. Estimated cooking time in minutes
5. Difficulty (Easy, Medium, or Hard)

Focus on QUICK meals that are simple and satisfying - think 15-30 minute dishes.
Prioritize using multiple pantry items together.

Respond in this exact JSON format:
{
  "suggestions": [
    {
      "name": "Garlic Butter Pasta",
      "description": "Simple aglio e olio style pasta with crispy garlic",
      "ingredients": ["garlic", "olive oil", "pasta"],
      "timeMinutes": 15,
      "difficulty": "Easy"
    }
  ]
}`

// QuickBitesService 依 pantry 現有食材建議快手餐
type QuickBitesService struct {
	config    *config.Config
	completer Completer
}

// NewQuickBitesService 創建快手餐建議服務
func NewQuickBitesService(cfg *config.Config, completer Completer) *QuickBitesService {
	return &QuickBitesService{
		config:    cfg,
		completer: completer,
	}
}

// Generate 生成快手餐建議。pantry 是空的就直接回空清單，不打上游。
func (s *QuickBitesService) Generate(ctx context.Context, items []common.PantryItemSummary) ([]common.QuickBiteSuggestion, error) {
	if len(items) == 0 {
		return []common.QuickBiteSuggestion{}, nil
	}

	prompt := fmt.Sprintf(quickBitesPromptFormat, common.FormatPantryItems(items))

	raw, err := s.completer.Complete(ctx, common.CompletionRequest{
		UserText:  prompt,
		MaxTokens: s.config.Anthropic.QuickBiteTokens,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Suggestions []common.QuickBiteSuggestion `json:"suggestions"`
	}
	if err := common.ParseJSON(common.ExtractJSONObject(raw), &result); err != nil {
		return nil, common.ErrAIParse
	}
	if result.Suggestions == nil {
		result.Suggestions = []common.QuickBiteSuggestion{}
	}
	return result.Suggestions, nil
}
