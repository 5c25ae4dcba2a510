// Package hosting 聚餐活動端點
package hosting

import (
	"net/http"

	"beli-at-home/internal/api/handlers"
	corehosting "beli-at-home/internal/core/hosting"
	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 聚餐活動處理程序
type Handler struct {
	store *corehosting.Store
}

// NewHandler 創建聚餐活動處理程序
func NewHandler(store *corehosting.Store) *Handler {
	return &Handler{store: store}
}

// List 列出所有活動
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": h.store.Events()})
}

// Create 建立活動，meal 必須存在
func (h *Handler) Create(c *gin.Context) {
	var input corehosting.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	event, err := h.store.Create(c.Request.Context(), input)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// Remove 移除活動
func (h *Handler) Remove(c *gin.Context) {
	if err := h.store.Remove(c.Request.Context(), c.Param("id")); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ActiveForMeal 查找某餐目前有效的活動
func (h *Handler) ActiveForMeal(c *gin.Context) {
	event, ok := h.store.FindActiveForMeal(c.Param("mealId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No active event for meal",
			"code":  common.ErrCodeNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, event)
}
