// Package mealqueue 管理待煮清單、食材保留表與剩食建議
package mealqueue

import (
	"context"
	"sync"
	"time"

	"beli-at-home/internal/core/ingredient"
	"beli-at-home/internal/infrastructure/persistence"
	"beli-at-home/internal/pkg/common"

	"go.uber.org/zap"
)

// CartAdder 將食譜的採買清單匯入購物車
type CartAdder interface {
	AddMany(ctx context.Context, items []common.GroceryItem, recipeSource string) int
}

// Store 待煮佇列狀態管理
type Store struct {
	mu      sync.RWMutex
	persist persistence.Store
	cart    CartAdder

	meals     []common.QueuedMeal
	leftovers []common.LeftoverSuggestion

	// 剩食建議的世代號，舊世代的生成結果一律丟棄
	leftoverGen uint64
}

// NewStore 創建佇列存儲並載入既有資料
func NewStore(persist persistence.Store, cart CartAdder) *Store {
	s := &Store{
		persist:   persist,
		cart:      cart,
		meals:     []common.QueuedMeal{},
		leftovers: []common.LeftoverSuggestion{},
	}

	ctx := context.Background()
	var meals []common.QueuedMeal
	switch err := persist.Load(ctx, persistence.KeyMealQueue, &meals); {
	case err == nil:
		s.meals = meals
	case err != persistence.ErrNotFound:
		common.LogWarn("Failed to load meal queue, starting empty", zap.Error(err))
	}

	var leftovers []common.LeftoverSuggestion
	switch err := persist.Load(ctx, persistence.KeyLeftoverSuggestions, &leftovers); {
	case err == nil:
		s.leftovers = leftovers
	case err != persistence.ErrNotFound:
		common.LogWarn("Failed to load leftover suggestions, starting empty", zap.Error(err))
	}

	return s
}

// Meals 回傳佇列內容的拷貝
func (s *Store) Meals() []common.QueuedMeal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]common.QueuedMeal{}, s.meals...)
}

// Find 以 id 查找一餐
func (s *Store) Find(id string) (common.QueuedMeal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.meals {
		if m.ID == id {
			return m, true
		}
	}
	return common.QueuedMeal{}, false
}

// Enqueue 排入一餐。份數未給時沿用食譜份數，
// 食譜的採買項目會自動匯入購物車並標上菜名。
func (s *Store) Enqueue(ctx context.Context, recipe common.RecipeResult, servings int, isHosting bool, guestCount int) common.QueuedMeal {
	if servings <= 0 {
		servings = recipe.Servings
	}

	meal := common.QueuedMeal{
		ID:         common.GenerateUUID(),
		Recipe:     recipe,
		Servings:   servings,
		IsHosting:  isHosting,
		GuestCount: guestCount,
		DateAdded:  time.Now(),
	}

	s.mu.Lock()
	s.meals = append(s.meals, meal)
	s.save(ctx)
	s.mu.Unlock()

	// 購物車自己會濾掉 pantry 已有的項目
	if s.cart != nil {
		s.cart.AddMany(ctx, recipe.GroceryList, recipe.Dish)
	}

	return meal
}

// Dequeue 移出一餐。聚餐活動不跟著連動刪除。
func (s *Store) Dequeue(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.meals {
		if m.ID == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			s.save(ctx)
			return nil
		}
	}
	return common.ErrNotFound
}

// MarkCooked 標記煮過。已煮過的再標一次是 no-op。
func (s *Store) MarkCooked(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meals {
		if s.meals[i].ID == id {
			if !s.meals[i].IsCooked {
				s.meals[i].IsCooked = true
				s.save(ctx)
			}
			return nil
		}
	}
	return common.ErrNotFound
}

// ClearAll 清空佇列與剩食建議，兩者一起重置
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meals = []common.QueuedMeal{}
	s.leftovers = []common.LeftoverSuggestion{}
	s.save(ctx)
	s.saveLeftovers(ctx)
}

// Reservations 掃描未煮的餐，對每個採買項目以正規化鍵
// 記下需要它的菜名。同一道菜排了兩次就出現兩次，不去重。
func (s *Store) Reservations() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]string)
	for _, m := range s.meals {
		if m.IsCooked {
			continue
		}
		for _, item := range m.Recipe.GroceryList {
			key := ingredient.NormalizeKey(item.Item)
			out[key] = append(out[key], m.Recipe.Dish)
		}
	}
	return out
}

// Leftovers 回傳最近一批剩食建議
func (s *Store) Leftovers() []common.LeftoverSuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]common.LeftoverSuggestion{}, s.leftovers...)
}

// NextLeftoverGeneration 取得下一個世代號，
// 發出佇列規劃請求前呼叫，結果落地時帶回同一個號碼
func (s *Store) NextLeftoverGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leftoverGen++
	return s.leftoverGen
}

// SetLeftovers 整批覆寫剩食建議，世代號落後的批次直接丟棄
func (s *Store) SetLeftovers(ctx context.Context, gen uint64, suggestions []common.LeftoverSuggestion) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.leftoverGen {
		common.LogDebug("Discarding stale leftover batch",
			zap.Uint64("generation", gen),
			zap.Uint64("current", s.leftoverGen))
		return false
	}

	if suggestions == nil {
		suggestions = []common.LeftoverSuggestion{}
	}
	s.leftovers = suggestions
	s.saveLeftovers(ctx)
	return true
}

func (s *Store) save(ctx context.Context) {
	if err := s.persist.Save(ctx, persistence.KeyMealQueue, s.meals); err != nil {
		common.LogError("Failed to save meal queue", zap.Error(err))
	}
}

func (s *Store) saveLeftovers(ctx context.Context) {
	if err := s.persist.Save(ctx, persistence.KeyLeftoverSuggestions, s.leftovers); err != nil {
		common.LogError("Failed to save leftover suggestions", zap.Error(err))
	}
}
