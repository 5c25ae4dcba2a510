// Package api 路由組裝
package api

import (
	"context"
	"net/http"
	"time"

	carthandler "beli-at-home/internal/api/handlers/cart"
	"beli-at-home/internal/api/handlers/generate"
	"beli-at-home/internal/api/handlers/health"
	hostinghandler "beli-at-home/internal/api/handlers/hosting"
	pantryhandler "beli-at-home/internal/api/handlers/pantry"
	queuehandler "beli-at-home/internal/api/handlers/queue"
	"beli-at-home/internal/api/middleware"
	"beli-at-home/internal/core/ai/cache"
	"beli-at-home/internal/core/ai/service"
	"beli-at-home/internal/core/cart"
	"beli-at-home/internal/core/hosting"
	"beli-at-home/internal/core/ingredient"
	"beli-at-home/internal/core/mealqueue"
	"beli-at-home/internal/core/pantry"
	"beli-at-home/internal/core/plan"
	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/infrastructure/persistence"
	"beli-at-home/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 120 * time.Second
)

// SetupRouter 組裝所有存儲、服務與路由。
// 回傳的 cleanup 負責停掉路由器自己啟動的背景協程，關機時呼叫
func SetupRouter(cfg *config.Config, store persistence.Store, cacheManager *cache.Manager) (*gin.Engine, func(), error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Image.MaxSizeBytes))

	// 請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
		}
	})

	// 狀態存儲，依依賴順序組裝
	matcher := ingredient.SubstringMatcher{}
	pantryStore := pantry.NewStore(store, matcher)
	cartStore := cart.NewStore(store, pantryStore)
	queueStore := mealqueue.NewStore(store, cartStore)
	hostingStore := hosting.NewStore(store, queueStore)

	// AI 服務與三個生成服務
	aiService := service.NewService(cfg, cacheManager)
	recipeSvc := plan.NewRecipeService(cfg, aiService)
	planSvc := plan.NewQueuePlanService(cfg, aiService)
	quickBiteSvc := plan.NewQuickBitesService(cfg, aiService)

	common.LogInfo("Services initialized",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("model", cfg.Anthropic.Model),
		zap.Bool("api_key_configured", cfg.Anthropic.APIKey != ""),
	)

	// 健康檢查路由，/health 順帶回報快取統計
	healthHandler := health.NewHandler(cfg, cacheManager)
	router.GET("/health", healthHandler.Check)
	router.GET("/ready", healthHandler.Readiness)
	router.GET("/live", healthHandler.Liveness)

	dedup := middleware.NewDeduplicator(cfg.DedupWindow)

	api := router.Group("/api/v1")
	{
		// 生成端點，額外掛去重與限流
		generateHandler := generate.NewHandler(recipeSvc, planSvc, quickBiteSvc, pantryStore, queueStore)

		generateGroup := api.Group("")
		generateGroup.Use(dedup.Middleware())
		if cfg.RateLimit.Enabled {
			generateGroup.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
		}
		{
			generateGroup.POST("/generate-recipe", generateHandler.GenerateRecipe)
			generateGroup.POST("/generate-queue-plan", generateHandler.GenerateQueuePlan)
			generateGroup.POST("/generate-quick-bites", generateHandler.GenerateQuickBites)
		}

		// pantry 路由
		ph := pantryhandler.NewHandler(pantryStore)
		pantryGroup := api.Group("/pantry")
		{
			pantryGroup.GET("", ph.List)
			pantryGroup.POST("/items", ph.AddItem)
			pantryGroup.DELETE("/items/:name", ph.RemoveItem)
			pantryGroup.PATCH("/items/:name", ph.UpdateItem)
			pantryGroup.DELETE("", ph.Clear)
			pantryGroup.GET("/suggestions", ph.Suggestions)
			pantryGroup.GET("/essentials", ph.ListEssentials)
			pantryGroup.POST("/essentials", ph.AddEssential)
			pantryGroup.DELETE("/essentials/:name", ph.RemoveEssential)
		}

		// 購物車路由
		ch := carthandler.NewHandler(cartStore)
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", ch.List)
			cartGroup.POST("/items", ch.AddItems)
			cartGroup.DELETE("/items/:name", ch.RemoveItem)
			cartGroup.DELETE("", ch.Clear)
		}

		// 佇列路由
		qh := queuehandler.NewHandler(queueStore)
		queueGroup := api.Group("/queue")
		{
			queueGroup.GET("", qh.List)
			queueGroup.POST("", qh.Enqueue)
			queueGroup.GET("/reservations", qh.Reservations)
			queueGroup.DELETE("/:id", qh.Dequeue)
			queueGroup.POST("/:id/cooked", qh.MarkCooked)
			queueGroup.DELETE("", qh.Clear)
		}

		// 聚餐活動路由
		hh := hostinghandler.NewHandler(hostingStore)
		hostingGroup := api.Group("/hosting")
		{
			hostingGroup.GET("/events", hh.List)
			hostingGroup.POST("/events", hh.Create)
			hostingGroup.GET("/events/active/:mealId", hh.ActiveForMeal)
			hostingGroup.DELETE("/events/:id", hh.Remove)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", cfg.Image.MaxSizeBytes),
	)

	cleanup := func() {
		dedup.Close()
	}

	return router, cleanup, nil
}
