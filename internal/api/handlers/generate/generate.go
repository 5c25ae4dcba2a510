// Package generate AI 生成端點：食譜、佇列規劃、快手餐
package generate

import (
	"net/http"

	"beli-at-home/internal/api/handlers"
	"beli-at-home/internal/core/mealqueue"
	"beli-at-home/internal/core/pantry"
	"beli-at-home/internal/core/plan"
	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 生成請求處理程序
type Handler struct {
	recipeSvc    *plan.RecipeService
	planSvc      *plan.QueuePlanService
	quickBiteSvc *plan.QuickBitesService
	pantryStore  *pantry.Store
	queueStore   *mealqueue.Store
}

// NewHandler 創建生成請求處理程序
func NewHandler(
	recipeSvc *plan.RecipeService,
	planSvc *plan.QueuePlanService,
	quickBiteSvc *plan.QuickBitesService,
	pantryStore *pantry.Store,
	queueStore *mealqueue.Store,
) *Handler {
	return &Handler{
		recipeSvc:    recipeSvc,
		planSvc:      planSvc,
		quickBiteSvc: quickBiteSvc,
		pantryStore:  pantryStore,
		queueStore:   queueStore,
	}
}

// GenerateRecipe 由菜名或照片生成食譜
func (h *Handler) GenerateRecipe(c *gin.Context) {
	var input common.DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input. Provide either text or image.",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogInfo("開始處理食譜生成請求",
		zap.String("type", input.Type),
		zap.String("client_ip", c.ClientIP()),
	)

	recipe, err := h.recipeSvc.Generate(c.Request.Context(), input)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// queuePlanRequest 佇列規劃請求
type queuePlanRequest struct {
	Meals []common.QueuedMeal `json:"meals"`
}

// GenerateQueuePlan 整合佇列中所有餐的採買與順序規劃。
// 成功時附帶更新剩食建議批次。
func (h *Handler) GenerateQueuePlan(c *gin.Context) {
	var req queuePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No meals provided",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	// 先取世代號，回應比較慢落地時才能丟棄過期的批次
	gen := h.queueStore.NextLeftoverGeneration()

	result, err := h.planSvc.Generate(c.Request.Context(), req.Meals)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	h.queueStore.SetLeftovers(c.Request.Context(), gen, result.LeftoverSuggestions)

	c.JSON(http.StatusOK, result)
}

// quickBitesRequest 快手餐請求，pantryItems 省略時用伺服器端 pantry
type quickBitesRequest struct {
	PantryItems []common.PantryItemSummary `json:"pantryItems"`
}

// GenerateQuickBites 依 pantry 現有食材生成快手餐建議
func (h *Handler) GenerateQuickBites(c *gin.Context) {
	var req quickBitesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}
	}

	items := req.PantryItems
	if len(items) == 0 {
		items = h.pantryStore.Summaries()
	}

	// pantry 是空的就不打上游，也不消耗世代號，
	// 免得把別人在途中的批次作廢
	if len(items) == 0 {
		c.JSON(http.StatusOK, gin.H{"suggestions": []common.QuickBiteSuggestion{}})
		return
	}

	gen := h.pantryStore.NextQuickBiteGeneration()

	suggestions, err := h.quickBiteSvc.Generate(c.Request.Context(), items)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	h.pantryStore.SetQuickBites(c.Request.Context(), gen, suggestions)

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
