// Package handlers 提供各 handler 共用的回應工具
package handlers

import (
	"net/http"

	"beli-at-home/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondError 將內部錯誤轉成統一的 JSON 錯誤回應
func RespondError(c *gin.Context, err error) {
	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if ce, ok := err.(*common.CustomError); ok {
		if ce.Status >= http.StatusInternalServerError {
			common.LogError("請求處理失敗",
				zap.String("code", ce.Code),
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
		}
		c.JSON(ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		})
		return
	}

	common.LogError("未預期的錯誤",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  common.ErrCodeInternalError,
	})
}
