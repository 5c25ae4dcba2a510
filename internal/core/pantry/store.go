// Package pantry 管理使用者家中現有食材、常備項目與快手餐建議
package pantry

import (
	"context"
	"strings"
	"sync"

	"beli-at-home/internal/core/ingredient"
	"beli-at-home/internal/infrastructure/persistence"
	"beli-at-home/internal/pkg/common"

	"go.uber.org/zap"
)

// defaultEssentials 常備項目的預設清單
var defaultEssentials = []string{
	"Salt",
	"Pepper",
	"Olive Oil",
	"Vegetable Oil",
	"Butter",
	"Sugar",
	"Flour",
	"Garlic",
	"Onion",
	"Eggs",
	"Milk",
	"Rice",
	"Soy Sauce",
}

// Store pantry 狀態管理，所有變更同步寫回持久層
type Store struct {
	mu      sync.RWMutex
	persist persistence.Store
	matcher ingredient.Matcher

	items      []common.PantryItem
	essentials []string

	// 最近一批快手餐建議與其世代號，舊世代的結果一律丟棄
	quickBites   []common.QuickBiteSuggestion
	quickBiteGen uint64
}

// NewStore 創建 pantry 存儲並載入既有資料。
// 載入失敗視為空集合，損壞的資料不應讓服務起不來。
func NewStore(persist persistence.Store, matcher ingredient.Matcher) *Store {
	s := &Store{
		persist:    persist,
		matcher:    matcher,
		items:      []common.PantryItem{},
		essentials: append([]string{}, defaultEssentials...),
		quickBites: []common.QuickBiteSuggestion{},
	}

	ctx := context.Background()
	var items []common.PantryItem
	switch err := persist.Load(ctx, persistence.KeyPantry, &items); {
	case err == nil:
		s.items = items
	case err != persistence.ErrNotFound:
		common.LogWarn("Failed to load pantry, starting empty", zap.Error(err))
	}

	var essentials []string
	switch err := persist.Load(ctx, persistence.KeyCustomEssentials, &essentials); {
	case err == nil:
		s.essentials = essentials
	case err != persistence.ErrNotFound:
		common.LogWarn("Failed to load essentials, using defaults", zap.Error(err))
	}

	var bites []common.QuickBiteSuggestion
	switch err := persist.Load(ctx, persistence.KeyQuickBites, &bites); {
	case err == nil:
		s.quickBites = bites
	case err != persistence.ErrNotFound:
		common.LogWarn("Failed to load quick bites, starting empty", zap.Error(err))
	}

	return s
}

// Items 回傳 pantry 內容的拷貝
func (s *Store) Items() []common.PantryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]common.PantryItem{}, s.items...)
}

// Add 加入食材。名稱先經過正規化流程，
// 以正規化後的英文鍵判斷重複，已存在時保留原項目不動。
func (s *Store) Add(ctx context.Context, name string, quantity float64, unit string) (common.PantryItem, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return common.PantryItem{}, common.NewValidationError("item name is required")
	}
	if quantity <= 0 {
		quantity = 1
	}
	// 與 UpdateQuantity 相同的下限
	if quantity < 0.25 {
		return common.PantryItem{}, common.NewValidationError("quantity must be at least 0.25")
	}
	if unit == "" {
		unit = "units"
	}

	processed := ingredient.Normalize(trimmed)
	key := ingredient.NormalizeKey(processed.EnglishName)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.items {
		if ingredient.NormalizeKey(p.EnglishName) == key {
			return p, nil
		}
	}

	item := common.PantryItem{
		Name:        key,
		DisplayName: processed.DisplayName,
		EnglishName: processed.EnglishName,
		Quantity:    quantity,
		Unit:        unit,
	}
	s.items = append(s.items, item)
	s.savePantry(ctx)
	return item, nil
}

// Remove 以正規化鍵移除食材
func (s *Store) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.items {
		if p.Name == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.savePantry(ctx)
			return nil
		}
	}
	return common.ErrNotFound
}

// UpdateQuantity 更新數量，允許 0.5 這類分數但不得低於 0.25
func (s *Store) UpdateQuantity(ctx context.Context, name string, quantity float64) error {
	if quantity < 0.25 {
		return common.NewValidationError("quantity must be at least 0.25")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].Quantity = quantity
			s.savePantry(ctx)
			return nil
		}
	}
	return common.ErrNotFound
}

// UpdateUnit 更新單位
func (s *Store) UpdateUnit(ctx context.Context, name string, unit string) error {
	if strings.TrimSpace(unit) == "" {
		return common.NewValidationError("unit is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].Unit = unit
			s.savePantry(ctx)
			return nil
		}
	}
	return common.ErrNotFound
}

// Contains 判斷某個採買項目是否已在 pantry 裡，
// 同時用正規化鍵與英文名稱去比對
func (s *Store) Contains(itemName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if s.matcher.Matches(p.Name, itemName) || s.matcher.Matches(p.EnglishName, itemName) {
			return true
		}
	}
	return false
}

// Clear 清空 pantry，常備項目與快手餐建議不受影響
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []common.PantryItem{}
	s.savePantry(ctx)
}

// Summaries 回傳快手餐請求用的精簡清單
func (s *Store) Summaries() []common.PantryItemSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]common.PantryItemSummary, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, common.PantryItemSummary{
			DisplayName: p.DisplayName,
			Quantity:    p.Quantity,
			Unit:        p.Unit,
		})
	}
	return out
}

// Essentials 回傳常備項目清單的拷貝
func (s *Store) Essentials() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.essentials...)
}

// AddEssential 加入常備項目，顯示名稱走正規化流程取得大小寫，
// 以不分大小寫的方式判斷重複
func (s *Store) AddEssential(ctx context.Context, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", common.NewValidationError("essential name is required")
	}

	displayName := ingredient.Normalize(trimmed).DisplayName

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.essentials {
		if strings.EqualFold(e, displayName) {
			return e, nil
		}
	}

	s.essentials = append(s.essentials, displayName)
	s.saveEssentials(ctx)
	return displayName, nil
}

// RemoveEssential 以完整名稱移除常備項目
func (s *Store) RemoveEssential(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.essentials {
		if e == name {
			s.essentials = append(s.essentials[:i], s.essentials[i+1:]...)
			s.saveEssentials(ctx)
			return nil
		}
	}
	return common.ErrNotFound
}

// QuickBites 回傳最近一批快手餐建議
func (s *Store) QuickBites() []common.QuickBiteSuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]common.QuickBiteSuggestion{}, s.quickBites...)
}

// NextQuickBiteGeneration 取得下一個世代號。
// 每次發出生成請求前呼叫，回應落地時用同一個號碼寫回。
func (s *Store) NextQuickBiteGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quickBiteGen++
	return s.quickBiteGen
}

// SetQuickBites 整批覆寫快手餐建議。
// 世代號落後表示已有更新的請求發出，這批結果直接丟棄。
func (s *Store) SetQuickBites(ctx context.Context, gen uint64, suggestions []common.QuickBiteSuggestion) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.quickBiteGen {
		common.LogDebug("Discarding stale quick bite batch",
			zap.Uint64("generation", gen),
			zap.Uint64("current", s.quickBiteGen))
		return false
	}

	if suggestions == nil {
		suggestions = []common.QuickBiteSuggestion{}
	}
	s.quickBites = suggestions
	if err := s.persist.Save(ctx, persistence.KeyQuickBites, s.quickBites); err != nil {
		common.LogError("Failed to save quick bites", zap.Error(err))
	}
	return true
}

func (s *Store) savePantry(ctx context.Context) {
	if err := s.persist.Save(ctx, persistence.KeyPantry, s.items); err != nil {
		common.LogError("Failed to save pantry", zap.Error(err))
	}
}

func (s *Store) saveEssentials(ctx context.Context) {
	if err := s.persist.Save(ctx, persistence.KeyCustomEssentials, s.essentials); err != nil {
		common.LogError("Failed to save essentials", zap.Error(err))
	}
}
