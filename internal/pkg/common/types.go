package common

import (
	"fmt"
	"strings"
	"time"
)

// GroceryItem 食譜附帶的採買項目，由 AI 產生後不再修改
type GroceryItem struct {
	Item string  `json:"item"`
	Qty  string  `json:"qty"`
	Cost float64 `json:"cost"`
}

// RecipeResult AI 生成的家常食譜與價格比較結果
type RecipeResult struct {
	Dish            string        `json:"dish"`
	Restaurant      string        `json:"restaurant"`
	RestaurantPrice float64       `json:"restaurant_price"`
	HomePrice       float64       `json:"home_price"`
	Savings         float64       `json:"savings"`
	SavingsPercent  float64       `json:"savings_percent"`
	TimeMins        int           `json:"time_mins"`
	Difficulty      string        `json:"difficulty"` // Easy / Medium / Hard
	Servings        int           `json:"servings"`
	Ingredients     []string      `json:"ingredients"`
	Steps           []string      `json:"steps"`
	GroceryList     []GroceryItem `json:"grocery_list"`
}

// DishInput 食譜生成的輸入，文字或照片擇一
type DishInput struct {
	Type        string `json:"type" binding:"required"` // "text" 或 "image"
	Text        string `json:"text,omitempty"`
	ImageBase64 string `json:"imageBase64,omitempty"` // data URL 格式
}

// PantryItem 使用者家中現有的食材
type PantryItem struct {
	Name        string  `json:"name"`        // 正規化後的鍵，用於比對
	DisplayName string  `json:"displayName"` // 顯示名稱（可能含翻譯）
	EnglishName string  `json:"englishName"` // 英文名稱，用於比對
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// CartItem 購物車項目，附帶來源食譜
type CartItem struct {
	GroceryItem
	RecipeSource string `json:"recipeSource,omitempty"`
}

// QueuedMeal 排入佇列的一餐
type QueuedMeal struct {
	ID         string       `json:"id"`
	Recipe     RecipeResult `json:"recipe"`
	Servings   int          `json:"servings"`
	IsHosting  bool         `json:"isHosting"`
	GuestCount int          `json:"guestCount"`
	IsCooked   bool         `json:"isCooked"`
	DateAdded  time.Time    `json:"dateAdded"`
}

// HostingType 聚餐類型
type HostingType string

const (
	HostingPrivate HostingType = "private"
	HostingPublic  HostingType = "public"
)

// HostingEvent 聚餐活動紀錄，建立時以值快照當下的 meal
type HostingEvent struct {
	ID            string      `json:"id"`
	MealID        string      `json:"mealId"`
	Meal          QueuedMeal  `json:"meal"` // 建立當下的快照，之後不會跟著 meal 更新
	HostingType   HostingType `json:"hostingType"`
	InviteMessage string      `json:"inviteMessage,omitempty"` // 僅 private
	EventDate     string      `json:"eventDate"`
	EventTime     string      `json:"eventTime,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	IsActive      bool        `json:"isActive"`
}

// LeftoverSuggestion AI 建議的剩食料理
type LeftoverSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Urgency     string   `json:"urgency"` // high / medium / low
	TimeMinutes int      `json:"timeMinutes"`
}

// QuickBiteSuggestion AI 根據 pantry 建議的快手餐
type QuickBiteSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	TimeMinutes int      `json:"timeMinutes"`
	Difficulty  string   `json:"difficulty"`
}

// ConsolidatedGroceryItem 合併後的採買項目，附帶保鮮天數
type ConsolidatedGroceryItem struct {
	Item           string   `json:"item"`
	Qty            string   `json:"qty"`
	Cost           float64  `json:"cost"`
	DaysUntilSpoil int      `json:"daysUntilSpoil"`
	IsPerishable   bool     `json:"isPerishable"`
	UsedIn         []string `json:"usedIn"`
}

// SuggestedOrder AI 建議的烹飪順序
type SuggestedOrder struct {
	MealID string `json:"mealId"`
	Order  int    `json:"order"`
	Reason string `json:"reason"`
}

// QueuePlan 佇列整合規劃結果
type QueuePlan struct {
	ConsolidatedGroceryList []ConsolidatedGroceryItem `json:"consolidatedGroceryList"`
	SuggestedOrder          []SuggestedOrder          `json:"suggestedOrder"`
	LeftoverSuggestions     []LeftoverSuggestion      `json:"leftoverSuggestions"`
	TotalCost               float64                   `json:"totalCost"`
	TotalRestaurantCost     float64                   `json:"totalRestaurantCost"`
	TotalSavings            float64                   `json:"totalSavings"`
}

// PantryItemSummary quick-bites 請求用的 pantry 摘要
type PantryItemSummary struct {
	DisplayName string  `json:"displayName"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// ImageBlock 送往 AI 的圖片內容
type ImageBlock struct {
	MediaType  string `json:"media_type"`
	Base64Data string `json:"data"`
}

// CompletionRequest 送往 AI 服務的統一請求
type CompletionRequest struct {
	System    string
	UserText  string
	Image     *ImageBlock
	MaxTokens int
}

// FormatPantryItems 將 pantry 摘要格式化為提示詞列表
func FormatPantryItems(items []PantryItemSummary) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s (%g %s)\n", item.DisplayName, item.Quantity, item.Unit))
	}
	return sb.String()
}
