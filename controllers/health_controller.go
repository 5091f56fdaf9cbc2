package controllers

import (
	"net/http"

	"estate-listing-service/services/container"

	"github.com/gin-gonic/gin"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Container *container.ServiceContainer
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Container: container}
}

// Ping 健康检查端点，附带数据库连通状态
func (h *HealthCheckController) Ping(c *gin.Context) {
	dbStatus := "ok"
	sqlDB, err := h.Container.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "pong",
		"status":   "healthy",
		"database": dbStatus,
	})
}
