// Package cart 購物車端點
package cart

import (
	"net/http"

	"beli-at-home/internal/api/handlers"
	corecart "beli-at-home/internal/core/cart"
	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 購物車處理程序
type Handler struct {
	store *corecart.Store
}

// NewHandler 創建購物車處理程序
func NewHandler(store *corecart.Store) *Handler {
	return &Handler{store: store}
}

// List 列出購物車內容與總額
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.store.Items(),
		"total": h.store.Total(),
	})
}

// addItemsRequest 批次加入請求
type addItemsRequest struct {
	Items        []common.GroceryItem `json:"items" binding:"required"`
	RecipeSource string               `json:"recipeSource"`
}

// AddItems 批次加入採買項目
func (h *Handler) AddItems(c *gin.Context) {
	var req addItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	added := h.store.AddMany(c.Request.Context(), req.Items, req.RecipeSource)
	c.JSON(http.StatusOK, gin.H{
		"added": added,
		"items": h.store.Items(),
		"total": h.store.Total(),
	})
}

// RemoveItem 移除單一項目，名稱需完全相符
func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.store.Remove(c.Request.Context(), c.Param("name")); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear 清空購物車
func (h *Handler) Clear(c *gin.Context) {
	h.store.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}
