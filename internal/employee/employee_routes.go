package employee

import (
	"github.com/HikaruIzuno/dailyreport-system/internal/domain"
	"github.com/HikaruIzuno/dailyreport-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Employee management is an admin-only surface: every route sits behind
// the ADMIN gate.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	employees.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			handler.GetOptions,
		)

		employees.GET("/:code",
			middleware.RateLimitByUser(3, 10),
			handler.GetByCode,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		employees.PUT("/:code",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		employees.DELETE("/:code",
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
	}
}
