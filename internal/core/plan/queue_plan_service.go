package plan

import (
	"context"
	"fmt"

	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/pkg/common"
)

const queuePlanSystemPrompt = `You are a smart meal planning assistant for Beli at Home, an app that helps broke people cook restaurant dishes at home.

Given a list of queued meals with their recipes and grocery lists, you need to:

1. CONSOLIDATE the grocery list - combine duplicate ingredients across recipes
2. Add FRESHNESS data - estimate how many days each ingredient lasts
3. Suggest COOKING ORDER - which meals to cook first based on perishable ingredients
4. Suggest LEFTOVER MEALS - quick, easy meals using ingredients that will be left over

Return ONLY valid JSON matching this exact structure:
{
  "consolidatedGroceryList": [
    {
      "item": "Ingredient name",
      "qty": "combined quantity",
      "cost": 3.50,
      "daysUntilSpoil": 7,
      "isPerishable": true,
      "usedIn": ["Dish 1", "Dish 2"]
    }
  ],
  "suggestedOrder": [
    {
      "mealId": "abc123",
      "order": 1,
      "reason": "Fresh herbs will spoil in 3 days"
    }
  ],
  "leftoverSuggestions": [
    {
      "name": "Quick meal name",
      "description": "Brief description of the dish",
      "ingredients": ["leftover ingredient 1", "leftover ingredient 2"],
      "urgency": "high",
      "timeMinutes": 15
    }
  ],
  "totalCost": 28.50,
  "totalRestaurantCost": 85.00,
  "totalSavings": 56.50
}

Rules for freshness (daysUntilSpoil):
- Fresh herbs (basil, cilantro, parsley): 3-5 days
- Leafy greens: 5-7 days
- Fresh meat/fish: 2-3 days
- Ground meat: 1-2 days
- Vegetables (tomatoes, peppers): 7-10 days
- Root vegetables (onions, garlic, potatoes): 14+ days
- Dairy (milk, cream): 7-10 days
- Cheese: 14-21 days
- Pantry items (rice, pasta, canned goods): 30+ days (not perishable)

Urgency levels for leftover suggestions:
- "high": uses ingredients that spoil within 3 days
- "medium": uses ingredients that spoil within 7 days
- "low": uses non-perishable leftovers

Leftover meals should be SIMPLE and QUICK (under 20 mins) - think fried rice, quesadillas, omelets, stir-fry, etc.

Return ONLY the JSON, no other text.`

// mealDetail 送進提示詞的精簡 meal 描述
type mealDetail struct {
	ID              string               `json:"id"`
	Dish            string               `json:"dish"`
	Servings        int                  `json:"servings"`
	IsHosting       bool                 `json:"isHosting"`
	GuestCount      int                  `json:"guestCount"`
	GroceryList     []common.GroceryItem `json:"groceryList"`
	RestaurantPrice float64              `json:"restaurantPrice"`
}

// QueuePlanService 佇列整合規劃
type QueuePlanService struct {
	config    *config.Config
	completer Completer
}

// NewQueuePlanService 創建佇列規劃服務
func NewQueuePlanService(cfg *config.Config, completer Completer) *QueuePlanService {
	return &QueuePlanService{
		config:    cfg,
		completer: completer,
	}
}

// Generate 整合採買清單、建議烹飪順序與剩食料理
func (s *QueuePlanService) Generate(ctx context.Context, meals []common.QueuedMeal) (*common.QueuePlan, error) {
	if len(meals) == 0 {
		return nil, common.NewValidationError("No meals provided")
	}

	details := make([]mealDetail, 0, len(meals))
	for _, m := range meals {
		details = append(details, mealDetail{
			ID:              m.ID,
			Dish:            m.Recipe.Dish,
			Servings:        m.Servings,
			IsHosting:       m.IsHosting,
			GuestCount:      m.GuestCount,
			GroceryList:     m.Recipe.GroceryList,
			RestaurantPrice: m.Recipe.RestaurantPrice,
		})
	}

	detailsJSON, err := common.ToJSONIndent(details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode meal details: %w", err)
	}

	userContent := fmt.Sprintf(`Here are the queued meals to plan:

%s

Please consolidate the grocery list, suggest cooking order based on ingredient freshness, and suggest quick leftover meals.`, detailsJSON)

	raw, err := s.completer.Complete(ctx, common.CompletionRequest{
		System:    queuePlanSystemPrompt,
		UserText:  userContent,
		MaxTokens: s.config.Anthropic.PlanTokens,
	})
	if err != nil {
		return nil, err
	}

	var result common.QueuePlan
	if err := common.ParseJSON(common.StripCodeFence(raw), &result); err != nil {
		return nil, common.ErrAIParse
	}
	return &result, nil
}
