package report

import (
	"github.com/HikaruIzuno/dailyreport-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		reports.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		reports.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		reports.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		reports.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
	}
}
