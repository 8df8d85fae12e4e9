package auth

import (
	"github.com/HikaruIzuno/dailyreport-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.ContextLogger(logger))
	{
		authGroup.POST("/login", middleware.RateLimitByIP(5, 10), handler.Login)
		authGroup.POST("/refresh", middleware.RateLimitByIP(5, 10), handler.Refresh)
		authGroup.GET("/me", middleware.AuthMiddleware(), handler.GetMe)
	}
}
