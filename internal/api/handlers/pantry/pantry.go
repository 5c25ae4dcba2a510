// Package pantry pantry 與常備項目的 CRUD 端點
package pantry

import (
	"net/http"
	"strconv"

	"beli-at-home/internal/api/handlers"
	"beli-at-home/internal/core/ingredient"
	corepantry "beli-at-home/internal/core/pantry"
	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

const defaultSuggestionLimit = 5

// Handler pantry 處理程序
type Handler struct {
	store *corepantry.Store
}

// NewHandler 創建 pantry 處理程序
func NewHandler(store *corepantry.Store) *Handler {
	return &Handler{store: store}
}

// List 列出 pantry 內容
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.Items()})
}

// addItemRequest 新增食材請求
type addItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// AddItem 新增食材
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	item, err := h.store.Add(c.Request.Context(), req.Name, req.Quantity, req.Unit)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveItem 移除食材
func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.store.Remove(c.Request.Context(), c.Param("name")); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// updateItemRequest 更新數量或單位，兩者至少一項
type updateItemRequest struct {
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

// UpdateItem 更新食材的數量或單位
func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}
	if req.Quantity == nil && req.Unit == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Provide quantity or unit",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	name := c.Param("name")
	ctx := c.Request.Context()

	if req.Quantity != nil {
		if err := h.store.UpdateQuantity(ctx, name, *req.Quantity); err != nil {
			handlers.RespondError(c, err)
			return
		}
	}
	if req.Unit != nil {
		if err := h.store.UpdateUnit(ctx, name, *req.Unit); err != nil {
			handlers.RespondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Clear 清空 pantry
func (h *Handler) Clear(c *gin.Context) {
	h.store.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Suggestions 輸入前綴的自動補全
func (h *Handler) Suggestions(c *gin.Context) {
	q := c.Query("q")
	limit := defaultSuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": ingredient.Suggestions(q, limit)})
}

// ListEssentials 列出常備項目
func (h *Handler) ListEssentials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"essentials": h.store.Essentials()})
}

// addEssentialRequest 新增常備項目請求
type addEssentialRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddEssential 新增常備項目
func (h *Handler) AddEssential(c *gin.Context) {
	var req addEssentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	name, err := h.store.AddEssential(c.Request.Context(), req.Name)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"name": name})
}

// RemoveEssential 移除常備項目
func (h *Handler) RemoveEssential(c *gin.Context) {
	if err := h.store.RemoveEssential(c.Request.Context(), c.Param("name")); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
