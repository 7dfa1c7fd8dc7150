package employee

import (
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(10, 30),
			handler.List,
		)

		// Static route must sit beside /:id; gin resolves it first.
		employees.GET("/search",
			middleware.RateLimitByIP(5, 15),
			handler.Search,
		)

		employees.GET("/:id",
			middleware.RateLimitByIP(10, 30),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByIP(2, 5),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 2),
			handler.Delete,
		)

		employees.PATCH("/:id/deactivate",
			middleware.RateLimitByIP(2, 5),
			handler.Deactivate,
		)

		employees.PATCH("/:id/activate",
			middleware.RateLimitByIP(2, 5),
			handler.Activate,
		)
	}
}
