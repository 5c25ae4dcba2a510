// Package cart 管理採買清單，項目由食譜的 grocery list 匯入
package cart

import (
	"context"
	"math"
	"sync"

	"beli-at-home/internal/core/ingredient"
	"beli-at-home/internal/infrastructure/persistence"
	"beli-at-home/internal/pkg/common"

	"go.uber.org/zap"
)

// PantryChecker 判斷某項目是否已在 pantry，已有的不進購物車
type PantryChecker interface {
	Contains(itemName string) bool
}

// Store 購物車狀態管理
type Store struct {
	mu      sync.RWMutex
	persist persistence.Store
	pantry  PantryChecker

	items []common.CartItem
}

// NewStore 創建購物車存儲並載入既有資料
func NewStore(persist persistence.Store, pantry PantryChecker) *Store {
	s := &Store{
		persist: persist,
		pantry:  pantry,
		items:   []common.CartItem{},
	}

	var items []common.CartItem
	switch err := persist.Load(context.Background(), persistence.KeyCart, &items); {
	case err == nil:
		s.items = items
	case err != persistence.ErrNotFound:
		common.LogWarn("Failed to load cart, starting empty", zap.Error(err))
	}

	return s
}

// Items 回傳購物車內容的拷貝
func (s *Store) Items() []common.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]common.CartItem{}, s.items...)
}

// AddMany 批次加入採買項目。pantry 已有的先濾掉，
// 其餘以正規化鍵合併進現有清單，撞鍵時保留既有項目。
// 回傳實際新增的數量。
func (s *Store) AddMany(ctx context.Context, items []common.GroceryItem, recipeSource string) int {
	filtered := make([]common.CartItem, 0, len(items))
	for _, item := range items {
		if s.pantry != nil && s.pantry.Contains(item.Item) {
			continue
		}
		filtered = append(filtered, common.CartItem{
			GroceryItem:  item,
			RecipeSource: recipeSource,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, newItem := range filtered {
		key := ingredient.NormalizeKey(newItem.Item)
		exists := false
		for _, existing := range s.items {
			if ingredient.NormalizeKey(existing.Item) == key {
				exists = true
				break
			}
		}
		if !exists {
			s.items = append(s.items, newItem)
			added++
		}
	}

	if added > 0 {
		s.save(ctx)
	}
	return added
}

// Remove 以完整名稱移除項目
func (s *Store) Remove(ctx context.Context, itemName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Item == itemName {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.save(ctx)
			return nil
		}
	}
	return common.ErrNotFound
}

// Clear 清空購物車
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []common.CartItem{}
	s.save(ctx)
}

// Total 以整數分累加再換回元，避免浮點累加誤差
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cents int64
	for _, item := range s.items {
		cents += int64(math.Round(item.Cost * 100))
	}
	return float64(cents) / 100
}

func (s *Store) save(ctx context.Context) {
	if err := s.persist.Save(ctx, persistence.KeyCart, s.items); err != nil {
		common.LogError("Failed to save cart", zap.Error(err))
	}
}
