// Package queue 待煮佇列端點
package queue

import (
	"net/http"
	"strings"

	"beli-at-home/internal/api/handlers"
	"beli-at-home/internal/core/mealqueue"
	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 佇列處理程序
type Handler struct {
	store *mealqueue.Store
}

// NewHandler 創建佇列處理程序
func NewHandler(store *mealqueue.Store) *Handler {
	return &Handler{store: store}
}

// List 列出佇列與目前的剩食建議
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"meals":               h.store.Meals(),
		"leftoverSuggestions": h.store.Leftovers(),
	})
}

// enqueueRequest 排餐請求
type enqueueRequest struct {
	Recipe     common.RecipeResult `json:"recipe" binding:"required"`
	Servings   int                 `json:"servings"`
	IsHosting  bool                `json:"isHosting"`
	GuestCount int                 `json:"guestCount"`
}

// Enqueue 排入一餐，採買項目自動進購物車
func (h *Handler) Enqueue(c *gin.Context) {
	var req enqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}
	if strings.TrimSpace(req.Recipe.Dish) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Recipe dish is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	meal := h.store.Enqueue(c.Request.Context(), req.Recipe, req.Servings, req.IsHosting, req.GuestCount)
	c.JSON(http.StatusCreated, meal)
}

// Dequeue 移出一餐
func (h *Handler) Dequeue(c *gin.Context) {
	if err := h.store.Dequeue(c.Request.Context(), c.Param("id")); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkCooked 標記煮過
func (h *Handler) MarkCooked(c *gin.Context) {
	if err := h.store.MarkCooked(c.Request.Context(), c.Param("id")); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cooked"})
}

// Clear 清空佇列與剩食建議
func (h *Handler) Clear(c *gin.Context) {
	h.store.ClearAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Reservations 未煮的餐佔用了哪些食材
func (h *Handler) Reservations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reservations": h.store.Reservations()})
}
