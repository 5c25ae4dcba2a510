// Package hosting 管理聚餐活動紀錄
package hosting

import (
	"context"
	"strings"
	"sync"
	"time"

	"beli-at-home/internal/infrastructure/persistence"
	"beli-at-home/internal/pkg/common"

	"go.uber.org/zap"
)

// MealLookup 查找佇列中的一餐，建立活動時用來做值快照
type MealLookup interface {
	Find(id string) (common.QueuedMeal, bool)
}

// CreateInput 建立聚餐活動的參數
type CreateInput struct {
	MealID        string             `json:"mealId"`
	HostingType   common.HostingType `json:"hostingType"`
	InviteMessage string             `json:"inviteMessage,omitempty"`
	EventDate     string             `json:"eventDate"`
	EventTime     string             `json:"eventTime,omitempty"`
}

// Store 聚餐活動狀態管理
type Store struct {
	mu      sync.RWMutex
	persist persistence.Store
	meals   MealLookup

	events []common.HostingEvent
}

// NewStore 創建聚餐活動存儲並載入既有資料
func NewStore(persist persistence.Store, meals MealLookup) *Store {
	s := &Store{
		persist: persist,
		meals:   meals,
		events:  []common.HostingEvent{},
	}

	var events []common.HostingEvent
	switch err := persist.Load(context.Background(), persistence.KeyHostingEvents, &events); {
	case err == nil:
		s.events = events
	case err != persistence.ErrNotFound:
		common.LogWarn("Failed to load hosting events, starting empty", zap.Error(err))
	}

	return s
}

// Events 回傳活動清單的拷貝
func (s *Store) Events() []common.HostingEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]common.HostingEvent{}, s.events...)
}

// Create 建立聚餐活動。meal 必須在建立當下存在，
// 並以值快照進活動，之後 meal 的變動不會回寫到活動。
func (s *Store) Create(ctx context.Context, input CreateInput) (common.HostingEvent, error) {
	if strings.TrimSpace(input.MealID) == "" {
		return common.HostingEvent{}, common.NewValidationError("mealId is required")
	}
	if input.HostingType != common.HostingPrivate && input.HostingType != common.HostingPublic {
		return common.HostingEvent{}, common.NewValidationError("hostingType must be private or public")
	}
	if strings.TrimSpace(input.EventDate) == "" {
		return common.HostingEvent{}, common.NewValidationError("eventDate is required")
	}

	meal, ok := s.meals.Find(input.MealID)
	if !ok {
		return common.HostingEvent{}, common.ErrNotFound
	}

	event := common.HostingEvent{
		ID:            common.GenerateUUID(),
		MealID:        input.MealID,
		Meal:          meal,
		HostingType:   input.HostingType,
		InviteMessage: input.InviteMessage,
		EventDate:     input.EventDate,
		EventTime:     input.EventTime,
		CreatedAt:     time.Now(),
		IsActive:      true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	s.save(ctx)
	return event, nil
}

// Remove 以 id 移除活動
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			s.save(ctx)
			return nil
		}
	}
	return common.ErrNotFound
}

// FindActiveForMeal 回傳第一個仍有效且對應該餐的活動
func (s *Store) FindActiveForMeal(mealID string) (common.HostingEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.MealID == mealID && e.IsActive {
			return e, true
		}
	}
	return common.HostingEvent{}, false
}

func (s *Store) save(ctx context.Context) {
	if err := s.persist.Save(ctx, persistence.KeyHostingEvents, s.events); err != nil {
		common.LogError("Failed to save hosting events", zap.Error(err))
	}
}
